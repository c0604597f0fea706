package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
)

var (
	creationFeePrefix = []byte{0x10}
)

// CreationFeeTransferDetails marks a token transfer as the creation fee
// payment for the fund with the given id.
func CreationFeeTransferDetails(fundID int) []byte {
	return append(creationFeePrefix, convert.ToBytes(fundID)...)
}
