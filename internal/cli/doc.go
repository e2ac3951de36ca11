// Package cli provides command-line interface setup and configuration
// for the babelbot daemon. It handles flag parsing, command creation,
// credential resolution and configuration management using cobra and viper.
package cli
