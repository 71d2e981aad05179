/*
Package domain holds the plain types shared between calculators and the host
engine: stream tags, timestamps, packets, lifecycle events, and the sentinel
errors that classify failures as configuration-time or invocation-time.

Nothing in this package performs IO or holds mutable state; it is the
vocabulary of the calculator boundary.
*/
package domain
