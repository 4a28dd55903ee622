// Package cli implements the picseed command tree.
//
// Commands
//
//	picseed provision [--reset] [--skip-login]   create the seed accounts, then check they can log in
//	picseed login                                 check every seed account can log in
//	picseed reset                                 flush the rate-limit cache and delete the seed rows
//	picseed hash generate                         print an encoded argon2id hash
//	picseed hash verify                           check one password against an encoded hash
//	picseed hash search                           look for a hash's preimage in a word list
//
// Per-record failures are narrated and counted but do not change the exit
// status; only setup problems (bad config, unreadable files) make a command
// return an error.
package cli
