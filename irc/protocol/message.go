package protocol

// Message represents a single message exchanged using the IRC protocol. It is
// a plain value: the engine never retains it and never mutates a message
// handed to it by the caller.
type Message struct {
	// Tags are the IRCv3 message tags in their original order. Nil or
	// empty when the message carries no tags section.
	Tags []Tag

	// Prefix identifies the origin of the message. Nil when the message
	// originates from the local sender.
	Prefix *Prefix

	// Command is the named command or numeric reply together with its
	// parameters.
	Command Command
}

// Tag is a single IRCv3 message tag. Keys are case sensitive, may carry a
// vendor prefix ("vendor/key") and must be unique within a message.
type Tag struct {
	Key string

	// Value is nil when the tag was sent without a value at all, which is
	// distinct from an empty string value ("key" vs "key=").
	Value *string
}

// TagValue creates a tag carrying a value.
func TagValue(key, value string) Tag {
	return Tag{Key: key, Value: &value}
}

// Prefix is the optional sender of a message, either a server name or a
// nickname with an optional user and host.
type Prefix struct {
	// Server is the server name. Set only for server prefixes.
	Server string

	// Nick, User and Host describe a user prefix ("nick!user@host"). User
	// and Host may be empty when their separator was missing.
	Nick string
	User string
	Host string
}

// IsServer reports whether the prefix names a server rather than a user.
func (p *Prefix) IsServer() bool {
	return p.Server != ""
}
