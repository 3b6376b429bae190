// Package diag defines the diagnostic model shared by every phase of the
// checker: severities, stable numeric codes, spans with remediation
// payloads, and the Bag aggregator that enforces the run-level emit limit.
package diag
