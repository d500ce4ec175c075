// Package redact removes credentials and internal network addresses from
// messages before they reach end users.
//
// The default rules replace user=, password=, host=, port=, database=,
// api_key=, secret= and token= fields (key and value) as well as localhost,
// 127.0.0.1 and RFC 1918 addresses with "[REDACTED]":
//
//	redact.Redact("dial password=abc123 host=10.0.0.5")
//	// "dial [REDACTED] [REDACTED]"
//
// It is not a PII detector. Extra rules can be added with WithRules or
// loaded from YAML with LoadRules.
package redact
