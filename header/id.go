package header

import "strconv"

// ID is the nominal identity of a header type.
// It is the 64-bit FNV-1a hash of the type's canonical name, see [HashName].
type ID uint64

const (
	fnvBasis uint64 = 14695981039346656037
	fnvPrime uint64 = 1099511628211
)

// Identities of the built-in header types.
// Each constant equals HashName of the corresponding canonical name.
const (
	AcceptID          ID = 0x13be1af9766661e9 // Accept
	ContentEncodingID ID = 0xee9ca3b3f2ca3708 // Content-Encoding
	ContentLengthID   ID = 0x9c0ef613267b1bbd // Content-Length
	ContentTypeID     ID = 0xb93b0cfa7ef4ee75 // Content-Type
	HostID            ID = 0x6b05f9d8801fc14f // Host
	ServerID          ID = 0x5afcaa918bbb91b2 // Server
	UserAgentID       ID = 0xf5ec1768f53d5d2e // User-Agent
	// AnyID is shared by all extension headers, whatever their name is.
	AnyID ID = 0x0d505cd86a2f2f50 // extension-header
)

// HashName computes the FNV-1a hash of name.
// The name is hashed as is, so callers should canonicalize it first.
func HashName[T ~string | ~[]byte](name T) ID {
	h := fnvBasis
	for i := range len(name) {
		h ^= uint64(name[i])
		h *= fnvPrime
	}
	return ID(h)
}

func (id ID) String() string { return "0x" + strconv.FormatUint(uint64(id), 16) }
