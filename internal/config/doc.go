// Package config manages user-level settings stored at
// <data-dir>/config.yaml and the deployment Mode resolved once at startup
// from the build-time mode string. The Mode is the single switch between
// interactive development behavior and distributed release behavior.
package config
