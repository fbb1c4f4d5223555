// Package main provides the entry point for the tac_plus-ng management daemon.
// It runs a JSON API built on the Fiber framework for administering TACACS+
// policy entities (hosts, groups, users, profiles, rulesets), compiling them
// into tac_plus-ng configuration artifacts, and promoting one artifact to be
// the live daemon configuration. Policy is persisted with gorm.
package main
