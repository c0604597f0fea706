// Package pension contains RPC wrappers for Pension Fund Registry contract.
package pension

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// PensionFund is a contract-specific pension.Fund type used by its methods.
type PensionFund struct {
	Name string
	Owner util.Uint160
	Balance *big.Int
	VestingPeriod *big.Int
	Timestamp *big.Int
	Location string
	Currency string
	Active bool
	MinContribution *big.Int
	MaxWithdrawal *big.Int
}

// PensionBeneficiaryRecord is a contract-specific pension.BeneficiaryRecord type used by its methods.
type PensionBeneficiaryRecord struct {
	Share *big.Int
	Timestamp *big.Int
}

// PensionWithdrawalRecord is a contract-specific pension.WithdrawalRecord type used by its methods.
type PensionWithdrawalRecord struct {
	Amount *big.Int
	Timestamp *big.Int
	Reason string
}

// PensionUpdateRecord is a contract-specific pension.UpdateRecord type used by its methods.
type PensionUpdateRecord struct {
	Name string
	VestingPeriod *big.Int
	Timestamp *big.Int
	Updater util.Uint160
}

// FundCreatedEvent represents "FundCreated" event emitted by the contract.
type FundCreatedEvent struct {
	FundID *big.Int
	Owner util.Uint160
	Name string
}

// ContributionMadeEvent represents "ContributionMade" event emitted by the contract.
type ContributionMadeEvent struct {
	FundID *big.Int
	Contributor util.Uint160
	Amount *big.Int
}

// WithdrawalMadeEvent represents "WithdrawalMade" event emitted by the contract.
type WithdrawalMadeEvent struct {
	FundID *big.Int
	Withdrawer util.Uint160
	Amount *big.Int
}

// BeneficiaryDesignatedEvent represents "BeneficiaryDesignated" event emitted by the contract.
type BeneficiaryDesignatedEvent struct {
	FundID *big.Int
	Beneficiary util.Uint160
	Share *big.Int
}

// FundUpdatedEvent represents "FundUpdated" event emitted by the contract.
type FundUpdatedEvent struct {
	FundID *big.Int
	Name string
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Admin invokes `admin` method of contract.
func (c *ContractReader) Admin() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "admin"))
}

// AuthorityContract invokes `authorityContract` method of contract.
func (c *ContractReader) AuthorityContract() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "authorityContract"))
}

// BeneficiaryOf invokes `beneficiaryOf` method of contract.
func (c *ContractReader) BeneficiaryOf(fundID *big.Int, beneficiary util.Uint160) (*PensionBeneficiaryRecord, error) {
	return itemToPensionBeneficiaryRecord(unwrap.Item(c.invoker.Call(c.hash, "beneficiaryOf", fundID, beneficiary)))
}

// ContributionOf invokes `contributionOf` method of contract.
func (c *ContractReader) ContributionOf(fundID *big.Int, contributor util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "contributionOf", fundID, contributor))
}

// CreationFee invokes `creationFee` method of contract.
func (c *ContractReader) CreationFee() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "creationFee"))
}

// FundCount invokes `fundCount` method of contract.
func (c *ContractReader) FundCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "fundCount"))
}

// FundExists invokes `fundExists` method of contract.
func (c *ContractReader) FundExists(name string) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "fundExists", name))
}

// FundIDByName invokes `fundIDByName` method of contract.
func (c *ContractReader) FundIDByName(name string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "fundIDByName", name))
}

// Funds invokes `funds` method of contract.
func (c *ContractReader) Funds() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "funds"))
}

// FundsExpanded is similar to Funds (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) FundsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "funds", _numOfIteratorItems))
}

// FundsOf invokes `fundsOf` method of contract.
func (c *ContractReader) FundsOf(owner util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "fundsOf", owner))
}

// FundsOfExpanded is similar to FundsOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) FundsOfExpanded(owner util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "fundsOf", _numOfIteratorItems, owner))
}

// GetFund invokes `getFund` method of contract.
func (c *ContractReader) GetFund(fundID *big.Int) (*PensionFund, error) {
	return itemToPensionFund(unwrap.Item(c.invoker.Call(c.hash, "getFund", fundID)))
}

// LastUpdateOf invokes `lastUpdateOf` method of contract.
func (c *ContractReader) LastUpdateOf(fundID *big.Int) (*PensionUpdateRecord, error) {
	return itemToPensionUpdateRecord(unwrap.Item(c.invoker.Call(c.hash, "lastUpdateOf", fundID)))
}

// MaxFunds invokes `maxFunds` method of contract.
func (c *ContractReader) MaxFunds() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "maxFunds"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// WithdrawalOf invokes `withdrawalOf` method of contract.
func (c *ContractReader) WithdrawalOf(fundID *big.Int, withdrawer util.Uint160) (*PensionWithdrawalRecord, error) {
	return itemToPensionWithdrawalRecord(unwrap.Item(c.invoker.Call(c.hash, "withdrawalOf", fundID, withdrawer)))
}

// AddBeneficiary creates a transaction invoking `addBeneficiary` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddBeneficiary(fundID *big.Int, beneficiary util.Uint160, share *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addBeneficiary", fundID, beneficiary, share)
}

// AddBeneficiaryTransaction creates a transaction invoking `addBeneficiary` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddBeneficiaryTransaction(fundID *big.Int, beneficiary util.Uint160, share *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addBeneficiary", fundID, beneficiary, share)
}

// AddBeneficiaryUnsigned creates a transaction invoking `addBeneficiary` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddBeneficiaryUnsigned(fundID *big.Int, beneficiary util.Uint160, share *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addBeneficiary", nil, fundID, beneficiary, share)
}

// Contribute creates a transaction invoking `contribute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Contribute(fundID *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "contribute", fundID, amount)
}

// ContributeTransaction creates a transaction invoking `contribute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ContributeTransaction(fundID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "contribute", fundID, amount)
}

// ContributeUnsigned creates a transaction invoking `contribute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ContributeUnsigned(fundID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "contribute", nil, fundID, amount)
}

// CreateFund creates a transaction invoking `createFund` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateFund(owner util.Uint160, name string, vestingPeriod *big.Int, location string, currency string, minContribution *big.Int, maxWithdrawal *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createFund", owner, name, vestingPeriod, location, currency, minContribution, maxWithdrawal)
}

// CreateFundTransaction creates a transaction invoking `createFund` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateFundTransaction(owner util.Uint160, name string, vestingPeriod *big.Int, location string, currency string, minContribution *big.Int, maxWithdrawal *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createFund", owner, name, vestingPeriod, location, currency, minContribution, maxWithdrawal)
}

// CreateFundUnsigned creates a transaction invoking `createFund` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateFundUnsigned(owner util.Uint160, name string, vestingPeriod *big.Int, location string, currency string, minContribution *big.Int, maxWithdrawal *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createFund", nil, owner, name, vestingPeriod, location, currency, minContribution, maxWithdrawal)
}

// SetAuthorityContract creates a transaction invoking `setAuthorityContract` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAuthorityContract(authority util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAuthorityContract", authority)
}

// SetAuthorityContractTransaction creates a transaction invoking `setAuthorityContract` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAuthorityContractTransaction(authority util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAuthorityContract", authority)
}

// SetAuthorityContractUnsigned creates a transaction invoking `setAuthorityContract` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAuthorityContractUnsigned(authority util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAuthorityContract", nil, authority)
}

// SetCreationFee creates a transaction invoking `setCreationFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetCreationFee(n *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setCreationFee", n)
}

// SetCreationFeeTransaction creates a transaction invoking `setCreationFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetCreationFeeTransaction(n *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setCreationFee", n)
}

// SetCreationFeeUnsigned creates a transaction invoking `setCreationFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetCreationFeeUnsigned(n *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setCreationFee", nil, n)
}

// SetMaxFunds creates a transaction invoking `setMaxFunds` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMaxFunds(n *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMaxFunds", n)
}

// SetMaxFundsTransaction creates a transaction invoking `setMaxFunds` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMaxFundsTransaction(n *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMaxFunds", n)
}

// SetMaxFundsUnsigned creates a transaction invoking `setMaxFunds` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMaxFundsUnsigned(n *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMaxFunds", nil, n)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateFund creates a transaction invoking `updateFund` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateFund(fundID *big.Int, newName string, newVestingPeriod *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateFund", fundID, newName, newVestingPeriod)
}

// UpdateFundTransaction creates a transaction invoking `updateFund` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateFundTransaction(fundID *big.Int, newName string, newVestingPeriod *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateFund", fundID, newName, newVestingPeriod)
}

// UpdateFundUnsigned creates a transaction invoking `updateFund` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateFundUnsigned(fundID *big.Int, newName string, newVestingPeriod *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateFund", nil, fundID, newName, newVestingPeriod)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(fundID *big.Int, amount *big.Int, reason string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", fundID, amount, reason)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(fundID *big.Int, amount *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", fundID, amount, reason)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(fundID *big.Int, amount *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, fundID, amount, reason)
}

// itemToPensionFund converts stack item into *PensionFund.
func itemToPensionFund(item stackitem.Item, err error) (*PensionFund, error) {
	if err != nil {
		return nil, err
	}
	var res = new(PensionFund)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of PensionFund from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *PensionFund) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 10 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Balance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Balance: %w", err)
	}

	index++
	res.VestingPeriod, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VestingPeriod: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	res.Location, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Location: %w", err)
	}

	index++
	res.Currency, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Currency: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	res.MinContribution, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinContribution: %w", err)
	}

	index++
	res.MaxWithdrawal, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxWithdrawal: %w", err)
	}

	return nil
}

// itemToPensionBeneficiaryRecord converts stack item into *PensionBeneficiaryRecord.
func itemToPensionBeneficiaryRecord(item stackitem.Item, err error) (*PensionBeneficiaryRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(PensionBeneficiaryRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of PensionBeneficiaryRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *PensionBeneficiaryRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Share, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Share: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

// itemToPensionWithdrawalRecord converts stack item into *PensionWithdrawalRecord.
func itemToPensionWithdrawalRecord(item stackitem.Item, err error) (*PensionWithdrawalRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(PensionWithdrawalRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of PensionWithdrawalRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *PensionWithdrawalRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	res.Reason, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reason: %w", err)
	}

	return nil
}

// itemToPensionUpdateRecord converts stack item into *PensionUpdateRecord.
func itemToPensionUpdateRecord(item stackitem.Item, err error) (*PensionUpdateRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(PensionUpdateRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of PensionUpdateRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *PensionUpdateRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.VestingPeriod, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VestingPeriod: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	res.Updater, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Updater: %w", err)
	}

	return nil
}

// FundCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "FundCreated" name from the provided [result.ApplicationLog].
func FundCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FundCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FundCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FundCreated" {
				continue
			}
			event := new(FundCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FundCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FundCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *FundCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.FundID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FundID: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	return nil
}

// ContributionMadeEventsFromApplicationLog retrieves a set of all emitted events
// with "ContributionMade" name from the provided [result.ApplicationLog].
func ContributionMadeEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContributionMadeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ContributionMadeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ContributionMade" {
				continue
			}
			event := new(ContributionMadeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ContributionMadeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContributionMadeEvent or
// returns an error if it's not possible to do to so.
func (e *ContributionMadeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.FundID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FundID: %w", err)
	}

	index++
	e.Contributor, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Contributor: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// WithdrawalMadeEventsFromApplicationLog retrieves a set of all emitted events
// with "WithdrawalMade" name from the provided [result.ApplicationLog].
func WithdrawalMadeEventsFromApplicationLog(log *result.ApplicationLog) ([]*WithdrawalMadeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WithdrawalMadeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WithdrawalMade" {
				continue
			}
			event := new(WithdrawalMadeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WithdrawalMadeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WithdrawalMadeEvent or
// returns an error if it's not possible to do to so.
func (e *WithdrawalMadeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.FundID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FundID: %w", err)
	}

	index++
	e.Withdrawer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Withdrawer: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// BeneficiaryDesignatedEventsFromApplicationLog retrieves a set of all emitted events
// with "BeneficiaryDesignated" name from the provided [result.ApplicationLog].
func BeneficiaryDesignatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BeneficiaryDesignatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BeneficiaryDesignatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BeneficiaryDesignated" {
				continue
			}
			event := new(BeneficiaryDesignatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BeneficiaryDesignatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BeneficiaryDesignatedEvent or
// returns an error if it's not possible to do to so.
func (e *BeneficiaryDesignatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.FundID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FundID: %w", err)
	}

	index++
	e.Beneficiary, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Beneficiary: %w", err)
	}

	index++
	e.Share, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Share: %w", err)
	}

	return nil
}

// FundUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "FundUpdated" name from the provided [result.ApplicationLog].
func FundUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FundUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FundUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FundUpdated" {
				continue
			}
			event := new(FundUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FundUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FundUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *FundUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.FundID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FundID: %w", err)
	}

	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	return nil
}
