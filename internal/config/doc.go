// Package config provides configuration loading, merging, and validation
// facilities for the console client.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. Dotenv file (".env" by default)
//  4. JSON config file
//  5. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
