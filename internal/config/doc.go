// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources; the first source that
// sets a field wins:
//  1. Command-line flags
//  2. Environment variables, after an optional .env file is loaded
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the web application and
// [GetClientConfig] for the terminal client.
package config
