package lxd

// Identifies the LXD host a resource lives on.
//
// A Location is either the local host or a named remote. It carries no
// connection state; its only job is computing the textual prefix the lxc
// tool uses for addressing. The qualified name produced at creation time
// must be reused verbatim for every later operation on the same resource,
// because the tool's addressing is purely textual.
type Location struct {
	remote string // Remote host name, empty for the local host.
}

// Returns the local host location.
func Local() Location {
	return Location{}
}

// Returns the location of the named remote host.
//
// The host must be non-empty; Remote("") behaves as [Local].
func Remote(host string) Location {
	return Location{remote: host}
}

// Reports whether the location names a remote host.
func (l Location) IsRemote() bool {
	return l.remote != ""
}

// Returns the remote host name, or the empty string for the local host.
func (l Location) Host() string {
	return l.remote
}

// Prefixes a resource name with the location's remote.
//
// Local locations return the name unchanged; remote locations return
// "<host>:<name>".
func (l Location) Qualify(name string) string {
	if l.remote == "" {
		return name
	}
	return l.remote + ":" + name
}

// Returns the "<host>:" prefix used as a standalone listing argument.
func (l Location) prefix() string {
	return l.remote + ":"
}

func (l Location) String() string {
	if l.remote == "" {
		return "local"
	}
	return l.remote
}
