// Package timezone holds the desk clock. Token timestamps and log lines are taken from it so
// that they read in the rental desk's local zone (APP_TIMEZONE, IANA names such as
// "America/Chicago").
package timezone
