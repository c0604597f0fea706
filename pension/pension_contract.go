package pension

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/pensionchain/pension-contract/common"
)

type (
	// Fund is a named pension account with a capped balance and
	// a vesting clock.
	Fund struct {
		Name            string
		Owner           interop.Hash160
		Balance         int
		VestingPeriod   int
		Timestamp       int
		Location        string
		Currency        string
		Active          bool
		MinContribution int
		MaxWithdrawal   int
	}

	// BeneficiaryRecord is a percentage entitlement of a non-owner
	// principal. Only the latest designation per (fund, beneficiary)
	// pair is retained.
	BeneficiaryRecord struct {
		Share     int
		Timestamp int
	}

	// WithdrawalRecord is the most recent withdrawal of a principal
	// from a fund.
	WithdrawalRecord struct {
		Amount    int
		Timestamp int
		Reason    string
	}

	// UpdateRecord is the most recent metadata update of a fund.
	UpdateRecord struct {
		Name          string
		VestingPeriod int
		Timestamp     int
		Updater       interop.Hash160
	}
)

const (
	adminKey         = "admin"
	authorityKey     = "authorityContract"
	tokenContractKey = "tokenScriptHash"
	maxFundsKey      = "maxFunds"
	creationFeeKey   = "creationFee"
	// The fund count key must not share its first byte with fundKeyPrefix,
	// Funds iterates over the 'f' keyspace.
	fundCountKey = "totalFunds"

	fundKeyPrefix         = 'f'
	nameKeyPrefix         = 'n'
	ownerKeyPrefix        = 'o'
	contributionKeyPrefix = 'c'
	beneficiaryKeyPrefix  = 'b'
	withdrawalKeyPrefix   = 'w'
	updateKeyPrefix       = 'u'

	maxNameLength     = 100
	maxLocationLength = 100
	maxVestingPeriod  = 365
	maxShare          = 100

	currencySTX = "STX"
	currencyUSD = "USD"

	defaultMaxFunds    = 100
	defaultCreationFee = 500
)

// Error messages thrown by the contract methods. Each failed invocation
// aborts with one of these, leaving the storage untouched.
const (
	ErrFundExists         = "fund already exists"
	ErrCapacityExceeded   = "fund capacity exceeded"
	ErrInvalidName        = "invalid fund name"
	ErrInvalidVesting     = "invalid vesting period"
	ErrInvalidLocation    = "invalid location"
	ErrInvalidCurrency    = "invalid currency"
	ErrInvalidAmount      = "invalid amount"
	ErrInvalidBound       = "invalid withdrawal bound"
	ErrAuthorityNotSet    = "authority contract not configured"
	ErrAuthoritySet       = "authority contract already set"
	ErrInvalidAuthority   = "invalid authority script hash"
	ErrFundNotFound       = "fund not found"
	ErrFundInactive       = "fund is inactive"
	ErrInsufficientFunds  = "insufficient balance"
	ErrVestingNotMatured  = "vesting period not matured"
	ErrInvalidBeneficiary = "invalid beneficiary"
	ErrInvalidShare       = "invalid beneficiary share"
	ErrFeeTransferFailed  = "creation fee transfer failed"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)
	if isUpdate {
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	admin := args[0].(interop.Hash160)
	tokenContract := args[1].(interop.Hash160)
	if len(admin) != interop.Hash160Len || len(tokenContract) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	maxFunds := defaultMaxFunds
	if len(args) >= 3 {
		maxFunds = args[2].(int)
	}
	creationFee := defaultCreationFee
	if len(args) >= 4 {
		creationFee = args[3].(int)
	}
	if maxFunds <= 0 {
		panic("non-positive fund capacity")
	}
	if creationFee < 0 {
		panic("negative creation fee")
	}

	storage.Put(ctx, adminKey, admin)
	storage.Put(ctx, tokenContractKey, tokenContract)
	storage.Put(ctx, maxFundsKey, maxFunds)
	storage.Put(ctx, creationFeeKey, creationFee)
	storage.Put(ctx, fundCountKey, 0)

	runtime.Log("pension contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("pension contract updated")
}

// SetAuthorityContract sets the fee recipient of the contract. It can be
// invoked by the contract admin exactly once; repeated calls fail even
// for the admin.
func SetAuthorityContract(authority interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(storage.Get(ctx, adminKey).(interop.Hash160))

	if storage.Get(ctx, authorityKey) != nil {
		panic(ErrAuthoritySet)
	}
	if len(authority) != interop.Hash160Len {
		panic(ErrInvalidAuthority)
	}

	storage.Put(ctx, authorityKey, authority)
	runtime.Log("authority contract configured")
}

// SetMaxFunds replaces the fund capacity ceiling. It can be invoked by the
// contract admin after the authority contract has been configured.
func SetMaxFunds(n int) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(storage.Get(ctx, adminKey).(interop.Hash160))

	if storage.Get(ctx, authorityKey) == nil {
		panic(ErrAuthorityNotSet)
	}

	storage.Put(ctx, maxFundsKey, n)
	runtime.Log("fund capacity updated")
}

// SetCreationFee replaces the fee charged per fund creation. It can be
// invoked by the contract admin after the authority contract has been
// configured.
func SetCreationFee(n int) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(storage.Get(ctx, adminKey).(interop.Hash160))

	if storage.Get(ctx, authorityKey) == nil {
		panic(ErrAuthorityNotSet)
	}

	storage.Put(ctx, creationFeeKey, n)
	runtime.Log("creation fee updated")
}

// CreateFund registers a new pension fund owned by the specified principal
// and returns its id. Ids are dense, zero based and assigned in creation
// order. The creation fee is transferred from the owner to the authority
// contract within the same invocation; if the token transfer fails, the
// whole call is aborted and no fund is registered.
//
// The order of the checks below is a part of the contract interface:
// clients distinguish failure causes by the thrown message and rely on
// their precedence.
func CreateFund(owner interop.Hash160, name string, vestingPeriod int, location string, currency string, minContribution int, maxWithdrawal int) int {
	ctx := storage.GetContext()

	nameKey := fundNameKey(name)
	if storage.Get(ctx, nameKey) != nil {
		panic(ErrFundExists)
	}

	count := storage.Get(ctx, fundCountKey).(int)
	if count >= storage.Get(ctx, maxFundsKey).(int) {
		panic(ErrCapacityExceeded)
	}

	if len(name) == 0 || len(name) > maxNameLength {
		panic(ErrInvalidName)
	}
	if vestingPeriod <= 0 || vestingPeriod > maxVestingPeriod {
		panic(ErrInvalidVesting)
	}
	if len(location) == 0 || len(location) > maxLocationLength {
		panic(ErrInvalidLocation)
	}
	if currency != currencySTX && currency != currencyUSD {
		panic(ErrInvalidCurrency)
	}
	if minContribution <= 0 {
		panic(ErrInvalidAmount)
	}
	if maxWithdrawal <= 0 {
		panic(ErrInvalidBound)
	}

	authority := storage.Get(ctx, authorityKey)
	if authority == nil {
		panic(ErrAuthorityNotSet)
	}

	common.CheckOwnerWitness(owner)

	fee := storage.Get(ctx, creationFeeKey).(int)
	tokenContract := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	details := common.CreationFeeTransferDetails(count)
	ok := contract.Call(tokenContract, "transfer", contract.All,
		owner, authority.(interop.Hash160), fee, details).(bool)
	if !ok {
		panic(ErrFeeTransferFailed)
	}

	fund := Fund{
		Name:            name,
		Owner:           owner,
		Balance:         0,
		VestingPeriod:   vestingPeriod,
		Timestamp:       ledger.CurrentIndex(),
		Location:        location,
		Currency:        currency,
		Active:          true,
		MinContribution: minContribution,
		MaxWithdrawal:   maxWithdrawal,
	}

	common.SetSerialized(ctx, fundKey(count), fund)
	storage.Put(ctx, nameKey, count)
	storage.Put(ctx, ownerFundKey(owner, count), count)
	storage.Put(ctx, fundCountKey, count+1)

	runtime.Log("created new pension fund")
	runtime.Notify("FundCreated", count, owner, name)

	return count
}

// Contribute adds the given amount of principal currency units to the fund
// balance and returns the new balance. Only the fund owner may contribute.
// The amount must not be below the fund's minimal contribution, and the
// resulting balance must not exceed the fund's withdrawal bound, which
// acts as an absolute balance ceiling.
func Contribute(fundID int, amount int) int {
	ctx := storage.GetContext()
	fund := mustGetFund(ctx, fundID)

	if !fund.Active {
		panic(ErrFundInactive)
	}
	if amount <= 0 || amount < fund.MinContribution {
		panic(ErrInvalidAmount)
	}

	common.CheckOwnerWitness(fund.Owner)

	if fund.Balance+amount > fund.MaxWithdrawal {
		panic(ErrInvalidBound)
	}

	fund.Balance += amount
	common.SetSerialized(ctx, fundKey(fundID), fund)

	key := contributionKey(fundID, fund.Owner)
	total := 0
	if data := storage.Get(ctx, key); data != nil {
		total = data.(int)
	}
	storage.Put(ctx, key, total+amount)

	runtime.Notify("ContributionMade", fundID, fund.Owner, amount)

	return fund.Balance
}

// Withdraw removes the given amount from the fund balance and returns the
// new balance. Only the fund owner may withdraw, and only after the fund's
// vesting period has elapsed since the fund timestamp; the boundary is
// inclusive. The latest withdrawal per (fund, withdrawer) pair is kept in
// the withdrawal log, previous entries are overwritten.
//
// Note that UpdateFund resets the fund timestamp, restarting the vesting
// clock for all future withdrawals.
func Withdraw(fundID int, amount int, reason string) int {
	ctx := storage.GetContext()
	fund := mustGetFund(ctx, fundID)

	if !fund.Active {
		panic(ErrFundInactive)
	}
	if amount <= 0 {
		panic(ErrInvalidAmount)
	}
	if fund.Balance < amount {
		panic(ErrInsufficientFunds)
	}

	common.CheckOwnerWitness(fund.Owner)

	height := ledger.CurrentIndex()
	if height-fund.Timestamp < fund.VestingPeriod {
		panic(ErrVestingNotMatured)
	}

	fund.Balance -= amount
	common.SetSerialized(ctx, fundKey(fundID), fund)

	rec := WithdrawalRecord{
		Amount:    amount,
		Timestamp: height,
		Reason:    reason,
	}
	common.SetSerialized(ctx, withdrawalKey(fundID, fund.Owner), rec)

	runtime.Notify("WithdrawalMade", fundID, fund.Owner, amount)

	return fund.Balance
}

// AddBeneficiary designates a share of the fund for a non-owner principal.
// Only the fund owner may designate, the owner cannot designate themselves
// and the share must fit in 0..100. Repeated designation for the same
// beneficiary overwrites the previous record. The sum of the shares across
// beneficiaries of one fund is deliberately not capped.
func AddBeneficiary(fundID int, beneficiary interop.Hash160, share int) {
	ctx := storage.GetContext()
	fund := mustGetFund(ctx, fundID)

	common.CheckOwnerWitness(fund.Owner)

	if len(beneficiary) != interop.Hash160Len {
		panic(ErrInvalidBeneficiary)
	}
	if common.BytesEqual(beneficiary, fund.Owner) {
		panic(ErrInvalidBeneficiary)
	}
	if share < 0 || share > maxShare {
		panic(ErrInvalidShare)
	}

	rec := BeneficiaryRecord{
		Share:     share,
		Timestamp: ledger.CurrentIndex(),
	}
	common.SetSerialized(ctx, beneficiaryKey(fundID, beneficiary), rec)

	runtime.Notify("BeneficiaryDesignated", fundID, beneficiary, share)
}

// UpdateFund replaces the fund name and vesting period. Only the fund owner
// may update. The new name is validated the same way as at creation and must
// not collide with another fund; renaming removes the old name index entry,
// so the old name becomes available for future creations. The fund timestamp
// is reset to the current height, restarting the vesting clock.
func UpdateFund(fundID int, newName string, newVestingPeriod int) {
	ctx := storage.GetContext()
	fund := mustGetFund(ctx, fundID)

	common.CheckOwnerWitness(fund.Owner)

	if len(newName) == 0 || len(newName) > maxNameLength {
		panic(ErrInvalidName)
	}
	if newVestingPeriod <= 0 || newVestingPeriod > maxVestingPeriod {
		panic(ErrInvalidVesting)
	}

	newKey := fundNameKey(newName)
	if data := storage.Get(ctx, newKey); data != nil && data.(int) != fundID {
		panic(ErrFundExists)
	}

	storage.Delete(ctx, fundNameKey(fund.Name))
	storage.Put(ctx, newKey, fundID)

	height := ledger.CurrentIndex()
	fund.Name = newName
	fund.VestingPeriod = newVestingPeriod
	fund.Timestamp = height
	common.SetSerialized(ctx, fundKey(fundID), fund)

	rec := UpdateRecord{
		Name:          newName,
		VestingPeriod: newVestingPeriod,
		Timestamp:     height,
		Updater:       fund.Owner,
	}
	common.SetSerialized(ctx, updateKey(fundID), rec)

	runtime.Log("updated pension fund")
	runtime.Notify("FundUpdated", fundID, newName)
}

// GetFund returns the fund registered under the given id.
//
// If the fund doesn't exist, it panics with ErrFundNotFound.
func GetFund(fundID int) Fund {
	ctx := storage.GetReadOnlyContext()
	return mustGetFund(ctx, fundID)
}

// FundCount returns the number of registered funds. It is also the id that
// the next successful CreateFund call will assign.
func FundCount() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, fundCountKey).(int)
}

// FundExists returns true if a fund is registered under the given name.
func FundExists(name string) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, fundNameKey(name)) != nil
}

// FundIDByName resolves a fund name into the fund id.
//
// If no fund is registered under the name, it panics with ErrFundNotFound.
func FundIDByName(name string) int {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, fundNameKey(name))
	if data == nil {
		panic(ErrFundNotFound)
	}
	return data.(int)
}

// ContributionOf returns the cumulative sum of all contributions the given
// principal has made to the given fund, zero if there were none.
func ContributionOf(fundID int, contributor interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, contributionKey(fundID, contributor))
	if data == nil {
		return 0
	}
	return data.(int)
}

// BeneficiaryOf returns the latest beneficiary designation for the given
// (fund, beneficiary) pair, an empty record if there were none.
func BeneficiaryOf(fundID int, beneficiary interop.Hash160) BeneficiaryRecord {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, beneficiaryKey(fundID, beneficiary))
	if data != nil {
		return std.Deserialize(data.([]byte)).(BeneficiaryRecord)
	}
	return BeneficiaryRecord{}
}

// WithdrawalOf returns the latest withdrawal record for the given
// (fund, withdrawer) pair, an empty record if there were none.
func WithdrawalOf(fundID int, withdrawer interop.Hash160) WithdrawalRecord {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, withdrawalKey(fundID, withdrawer))
	if data != nil {
		return std.Deserialize(data.([]byte)).(WithdrawalRecord)
	}
	return WithdrawalRecord{}
}

// LastUpdateOf returns the latest metadata update record of the fund,
// an empty record if the fund was never updated.
func LastUpdateOf(fundID int) UpdateRecord {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, updateKey(fundID))
	if data != nil {
		return std.Deserialize(data.([]byte)).(UpdateRecord)
	}
	return UpdateRecord{}
}

// Funds returns an iterator over all registered funds. The iterator items
// are Fund structures.
func Funds() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{fundKeyPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// FundsOf returns an iterator over ids of all funds owned by the specified
// principal.
func FundsOf(owner interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{ownerKeyPrefix}, owner...), storage.ValuesOnly)
}

// Admin returns the contract admin fixed at deployment.
func Admin() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

// AuthorityContract returns the configured fee recipient, nil if it has not
// been configured yet.
func AuthorityContract() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, authorityKey)
	if data == nil {
		return nil
	}
	return data.(interop.Hash160)
}

// MaxFunds returns the fund capacity ceiling.
func MaxFunds() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, maxFundsKey).(int)
}

// CreationFee returns the fee charged per fund creation.
func CreationFee() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, creationFeeKey).(int)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func mustGetFund(ctx storage.Context, id int) Fund {
	data := storage.Get(ctx, fundKey(id))
	if data == nil {
		panic(ErrFundNotFound)
	}
	return std.Deserialize(data.([]byte)).(Fund)
}

func fundKey(id int) []byte {
	return append([]byte{fundKeyPrefix}, convert.ToBytes(id)...)
}

// fundNameKey hashes the name to fit the storage key length limit, fund
// names are allowed to be longer than storage keys.
func fundNameKey(name string) []byte {
	return append([]byte{nameKeyPrefix}, crypto.Ripemd160([]byte(name))...)
}

func ownerFundKey(owner interop.Hash160, id int) []byte {
	key := append([]byte{ownerKeyPrefix}, owner...)
	return append(key, convert.ToBytes(id)...)
}

func contributionKey(id int, contributor interop.Hash160) []byte {
	key := append([]byte{contributionKeyPrefix}, convert.ToBytes(id)...)
	return append(key, contributor...)
}

func beneficiaryKey(id int, beneficiary interop.Hash160) []byte {
	key := append([]byte{beneficiaryKeyPrefix}, convert.ToBytes(id)...)
	return append(key, beneficiary...)
}

func withdrawalKey(id int, withdrawer interop.Hash160) []byte {
	key := append([]byte{withdrawalKeyPrefix}, convert.ToBytes(id)...)
	return append(key, withdrawer...)
}

func updateKey(id int) []byte {
	return append([]byte{updateKeyPrefix}, convert.ToBytes(id)...)
}
