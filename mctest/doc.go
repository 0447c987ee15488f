// Package mctest provides utility functions for testing masterclock
// schedules and participants, in the spirit of hwsim's hwtest package.
package mctest
