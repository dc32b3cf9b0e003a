// Loads the optional lxdctl settings file.
//
// Settings live in a TOML file under the user's configuration directory
// (see the paths package) and supply defaults for values that can also be
// given as command-line flags. A missing file is not an error; it yields
// the zero configuration.
package config
