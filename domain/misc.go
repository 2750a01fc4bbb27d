package domain

import (
	"strings"
)

// ChainId is a cosmos chain id, ex: cosmoshub-4
type ChainId string

// Address is a bech32 account address
type Address string

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// bech32 addresses are case insensitive but never mixed case
func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) String() string {
	return string(a)
}

type TxHash string

func (h TxHash) ToUpper() TxHash {
	return TxHash(strings.ToUpper(string(h)))
}

func (h TxHash) IsEmpty() bool {
	return len(h) == 0
}

func (h TxHash) String() string {
	return string(h)
}
