package internal

// Version is the current babelbot release version.
const Version = "0.3.1"
