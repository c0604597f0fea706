package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrAdminWitnessFailed appears when the method must be called
	// by the contract admin but was not.
	ErrAdminWitnessFailed = "admin witness check failed"
	// ErrOwnerWitnessFailed appears when the method must be called
	// by an owner of some fund but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrCommitteeWitnessFailed appears when the method must be called
	// by the committee but was not.
	ErrCommitteeWitnessFailed = "committee witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using certain public key but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckAdminWitness checks witness of the passed caller.
// It panics with ErrAdminWitnessFailed message on fail.
func CheckAdminWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrAdminWitnessFailed)
}

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrOwnerWitnessFailed)
}

// CheckCommitteeWitness checks witness of the passed caller.
// It panics with ErrCommitteeWitnessFailed message on fail.
func CheckCommitteeWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrCommitteeWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
