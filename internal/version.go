package internal

// Version is the current release of extract-flash-cards.
var Version = "0.1.0"
