// Package config manages pagegen settings. Values come, in increasing order
// of precedence, from built-in defaults, the user file at
// ~/.pagegen/config.yaml, the project file .pagegen.yaml in the working
// directory, and PAGEGEN_* environment variables (a project .env file is
// loaded into the environment first).
package config
