package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/pensionchain/pension-contract/common"
)

type (
	// Token holds all token info.
	Token struct {
		// Ticker symbol
		Symbol string
		// Amount of decimals
		Decimals int
		// Storage key for circulation value
		CirculationKey string
	}

	// Account stores metadata of a single token account.
	Account struct {
		// Active balance
		Balance int
	}
)

const (
	symbol      = "STX"
	decimals    = 6
	circulation = "TokenCirculation"
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("pension token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("pension token contract updated")
}

// Symbol is a NEP-17 standard method that returns the token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of the token.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// minted tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the token balance of
// the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers tokens from one
// account to another. It can be invoked by the account owner or by a
// contract the owner is calling through.
//
// Produces Transfer notification. It returns false instead of panicking
// on a failed transfer, so calling contracts decide themselves whether
// the failure aborts their invocation.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount)
}

// Mint creates the given amount of tokens on the specified account. It can
// be invoked by committee only.
//
// Produces Transfer and Mint notifications.
func Mint(to interop.Hash160, amount int) {
	common.CheckCommitteeWitness(common.CommitteeAddress())

	if amount <= 0 {
		panic("non-positive amount")
	}

	ctx := storage.GetContext()
	acc := getAccount(ctx, to)
	acc.Balance += amount
	common.SetSerialized(ctx, to, acc)

	supply := token.getSupply(ctx)
	storage.Put(ctx, token.CirculationKey, supply+amount)

	runtime.Notify("Transfer", interop.Hash160(nil), to, amount)
	runtime.Notify("Mint", to, amount)
}

// Burn destroys the given amount of tokens on the specified account. It can
// be invoked by committee only.
//
// Produces Transfer and Burn notifications.
func Burn(from interop.Hash160, amount int) {
	common.CheckCommitteeWitness(common.CommitteeAddress())

	if amount <= 0 {
		panic("non-positive amount")
	}

	ctx := storage.GetContext()
	acc := getAccount(ctx, from)
	if acc.Balance < amount {
		panic("insufficient balance to burn")
	}

	if acc.Balance == amount {
		storage.Delete(ctx, from)
	} else {
		acc.Balance -= amount
		common.SetSerialized(ctx, from, acc)
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}
	storage.Put(ctx, token.CirculationKey, supply-amount)

	runtime.Notify("Transfer", from, interop.Hash160(nil), amount)
	runtime.Notify("Burn", from, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	acc := getAccount(ctx, holder)

	return acc.Balance
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int) bool {
	accFrom, ok := t.canTransfer(ctx, from, to, amount)
	if !ok {
		return false
	}

	if accFrom.Balance == amount {
		storage.Delete(ctx, from)
	} else {
		accFrom.Balance = accFrom.Balance - amount // neo-go#953
		common.SetSerialized(ctx, from, accFrom)
	}

	accTo := getAccount(ctx, to)
	accTo.Balance = accTo.Balance + amount // neo-go#953
	common.SetSerialized(ctx, to, accTo)

	runtime.Notify("Transfer", from, to, amount)

	return true
}

// canTransfer returns the sender account it can transfer from.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int) (Account, bool) {
	var emptyAcc = Account{}

	if amount < 0 {
		runtime.Log("negative amount")
		return emptyAcc, false
	}

	if len(to) != interop.Hash160Len || !isUsableAddress(from) {
		runtime.Log("bad script hashes")
		return emptyAcc, false
	}

	accFrom := getAccount(ctx, from)
	if accFrom.Balance < amount {
		runtime.Log("not enough assets")
		return emptyAcc, false
	}

	// return accFrom value back to transfer, reduces extra Get
	return accFrom, true
}

// isUsableAddress checks if the sender is either the correct account address
// or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if common.BytesEqual(callingScriptHash, addr) {
			return true
		}
	}

	return false
}

func getAccount(ctx storage.Context, key any) Account {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{}
}
