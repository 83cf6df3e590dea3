// Package config defines the format-agnostic manifest model for the
// application, along with the Loader interface for reading it from a
// concrete source.
//
// The config.Model is the single source of truth for the selector and
// composer packages. Concrete loaders, such as the HCL one, live in separate
// packages.
package config
