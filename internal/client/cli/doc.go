/*
Package cli is the interactive terminal client for ScholarSync.

It runs a small read-eval-print loop over the HTTP API:

	help             show available commands
	signup           create an account (name, email, password), then enter the emailed code
	login            sign in and remember the session on disk
	logout           forget the stored session
	whoami           show the signed in user
	create           add a student record
	list             list student records
	edit <id>        change a student record, blank answers keep the current value
	delete <id>      remove a student record
	exit | quit      leave the program

Failures are printed as one-line notifications. Forms remember what was
typed, so running the same command again offers the previous answers as
defaults.
*/
package cli
