// Provides platform-appropriate paths for lxdctl files.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// elsewhere, via the adrg/xdg package.
package paths
