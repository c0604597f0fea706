package tests

import (
	"path"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	pensionrpc "github.com/pensionchain/pension-contract/rpc/pension"
	"github.com/stretchr/testify/require"
)

const pensionPath = "../pension"

const (
	testMaxFunds    = 10
	testCreationFee = 100

	testMinContribution = 10
	testWithdrawalBound = 1000
)

func newPensionInvokers(t *testing.T, deployArgs ...interface{}) (*neotest.ContractInvoker, *neotest.ContractInvoker) {
	e := newExecutor(t)

	ctrToken := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, ctrToken, nil)

	args := append([]interface{}{e.CommitteeHash, ctrToken.Hash}, deployArgs...)
	ctrPension := neotest.CompileFile(t, e.CommitteeHash, pensionPath, path.Join(pensionPath, "config.yml"))
	e.DeployContract(t, ctrPension, args)

	return e.CommitteeInvoker(ctrPension.Hash), e.CommitteeInvoker(ctrToken.Hash)
}

// preparePension deploys both contracts, configures the authority account and
// mints enough tokens to the committee to pay any number of creation fees a
// test needs.
func preparePension(t *testing.T, maxFunds, creationFee int64) (*neotest.ContractInvoker, *neotest.ContractInvoker, util.Uint160) {
	c, ct := newPensionInvokers(t, maxFunds, creationFee)

	authority := c.NewAccount(t).ScriptHash()
	c.Invoke(t, stackitem.Null{}, "setAuthorityContract", authority)
	ct.Invoke(t, stackitem.Null{}, "mint", c.CommitteeHash, int64(1_000_000))

	return c, ct, authority
}

func createTestFund(t *testing.T, c *neotest.ContractInvoker, id int64, name string, vesting int64) {
	c.Invoke(t, id, "createFund", c.CommitteeHash, name, vesting,
		"Bern", "STX", int64(testMinContribution), int64(testWithdrawalBound))
}

func fundState(t *testing.T, c *neotest.ContractInvoker, id int64) *pensionrpc.PensionFund {
	s, err := c.TestInvoke(t, "getFund", id)
	require.NoError(t, err)

	f := new(pensionrpc.PensionFund)
	require.NoError(t, f.FromStackItem(s.Pop().Item()))
	return f
}

func TestPensionDeployDefaults(t *testing.T) {
	c, _ := newPensionInvokers(t)

	c.Invoke(t, 0, "fundCount")
	c.Invoke(t, 100, "maxFunds")
	c.Invoke(t, 500, "creationFee")
	c.Invoke(t, c.CommitteeHash.BytesBE(), "admin")
	c.Invoke(t, stackitem.Null{}, "authorityContract")
}

func TestSetAuthorityContract(t *testing.T) {
	c, _ := newPensionInvokers(t, int64(testMaxFunds), int64(testCreationFee))

	authority := c.NewAccount(t).ScriptHash()

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, "admin witness check failed", "setAuthorityContract", authority)

	c.InvokeFail(t, "invalid authority script hash", "setAuthorityContract", []byte{1, 2, 3})

	c.Invoke(t, stackitem.Null{}, "setAuthorityContract", authority)
	c.Invoke(t, authority.BytesBE(), "authorityContract")

	c.InvokeFail(t, "authority contract already set", "setAuthorityContract", authority)
}

func TestPensionSetters(t *testing.T) {
	c, _ := newPensionInvokers(t, int64(testMaxFunds), int64(testCreationFee))

	c.InvokeFail(t, "authority contract not configured", "setMaxFunds", int64(42))
	c.InvokeFail(t, "authority contract not configured", "setCreationFee", int64(42))

	authority := c.NewAccount(t).ScriptHash()
	c.Invoke(t, stackitem.Null{}, "setAuthorityContract", authority)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, "admin witness check failed", "setMaxFunds", int64(42))
	cAcc.InvokeFail(t, "admin witness check failed", "setCreationFee", int64(42))

	c.Invoke(t, stackitem.Null{}, "setMaxFunds", int64(42))
	c.Invoke(t, 42, "maxFunds")

	c.Invoke(t, stackitem.Null{}, "setCreationFee", int64(7))
	c.Invoke(t, 7, "creationFee")
}

func TestCreateFund(t *testing.T) {
	c, ct, authority := preparePension(t, testMaxFunds, testCreationFee)

	nameA, nameB := randomFundName(), randomFundName()
	createTestFund(t, c, 0, nameA, 30)
	createTestFund(t, c, 1, nameB, 30)
	c.Invoke(t, 2, "fundCount")

	c.Invoke(t, true, "fundExists", nameA)
	c.Invoke(t, false, "fundExists", randomFundName())
	c.Invoke(t, 1, "fundIDByName", nameB)

	f := fundState(t, c, 0)
	require.Equal(t, nameA, f.Name)
	require.Equal(t, c.CommitteeHash, f.Owner)
	require.EqualValues(t, 0, f.Balance.Int64())
	require.EqualValues(t, 30, f.VestingPeriod.Int64())
	require.Equal(t, "Bern", f.Location)
	require.Equal(t, "STX", f.Currency)
	require.True(t, f.Active)
	require.EqualValues(t, testMinContribution, f.MinContribution.Int64())
	require.EqualValues(t, testWithdrawalBound, f.MaxWithdrawal.Int64())

	ct.Invoke(t, 2*testCreationFee, "balanceOf", authority)
	ct.Invoke(t, int64(1_000_000-2*testCreationFee), "balanceOf", c.CommitteeHash)
}

func TestCreateFundValidation(t *testing.T) {
	c, _, _ := preparePension(t, testMaxFunds, testCreationFee)

	invalid := func(msg string, name string, vesting int64, location, currency string, minC, maxW int64) {
		c.InvokeFail(t, msg, "createFund", c.CommitteeHash, name, vesting, location, currency, minC, maxW)
	}

	invalid("invalid fund name", "", 30, "Bern", "STX", 10, 1000)
	invalid("invalid fund name", strings.Repeat("a", 101), 30, "Bern", "STX", 10, 1000)
	invalid("invalid vesting period", randomFundName(), 0, "Bern", "STX", 10, 1000)
	invalid("invalid vesting period", randomFundName(), 366, "Bern", "STX", 10, 1000)
	invalid("invalid location", randomFundName(), 30, "", "STX", 10, 1000)
	invalid("invalid location", randomFundName(), 30, strings.Repeat("x", 101), "STX", 10, 1000)
	invalid("invalid currency", randomFundName(), 30, "Bern", "EUR", 10, 1000)
	invalid("invalid amount", randomFundName(), 30, "Bern", "STX", 0, 1000)
	invalid("invalid withdrawal bound", randomFundName(), 30, "Bern", "USD", 10, 0)

	// a name of exactly 100 characters is still fine
	c.Invoke(t, 0, "createFund", c.CommitteeHash, strings.Repeat("b", 100), int64(365),
		"Bern", "USD", int64(1), int64(1))
}

func TestCreateFundErrorOrder(t *testing.T) {
	t.Run("duplicate name precedes validation and capacity", func(t *testing.T) {
		c, _, _ := preparePension(t, 1, testCreationFee)

		name := randomFundName()
		createTestFund(t, c, 0, name, 30)

		c.InvokeFail(t, "fund already exists", "createFund", c.CommitteeHash, name,
			int64(0), "", "EUR", int64(0), int64(0))
	})

	t.Run("capacity precedes argument validation", func(t *testing.T) {
		c, _, _ := preparePension(t, 1, testCreationFee)

		createTestFund(t, c, 0, randomFundName(), 30)

		c.InvokeFail(t, "fund capacity exceeded", "createFund", c.CommitteeHash, "",
			int64(0), "", "EUR", int64(0), int64(0))
	})

	t.Run("validation precedes authority check", func(t *testing.T) {
		c, _ := newPensionInvokers(t, int64(testMaxFunds), int64(testCreationFee))

		c.InvokeFail(t, "invalid vesting period", "createFund", c.CommitteeHash,
			randomFundName(), int64(0), "Bern", "STX", int64(10), int64(1000))

		c.InvokeFail(t, "authority contract not configured", "createFund", c.CommitteeHash,
			randomFundName(), int64(30), "Bern", "STX", int64(10), int64(1000))
	})

	t.Run("owner witness is checked last", func(t *testing.T) {
		c, _, _ := preparePension(t, testMaxFunds, testCreationFee)

		acc := c.NewAccount(t)
		cAcc := c.WithSigners(acc)
		cAcc.InvokeFail(t, "owner witness check failed", "createFund", c.CommitteeHash,
			randomFundName(), int64(30), "Bern", "STX", int64(10), int64(1000))
	})
}

func TestContribute(t *testing.T) {
	c, _, _ := preparePension(t, testMaxFunds, testCreationFee)

	name := randomFundName()
	c.Invoke(t, 0, "createFund", c.CommitteeHash, name, int64(30),
		"Bern", "STX", int64(10), int64(100))

	c.InvokeFail(t, "fund not found", "contribute", int64(99), int64(10))
	c.InvokeFail(t, "invalid amount", "contribute", int64(0), int64(0))
	c.InvokeFail(t, "invalid amount", "contribute", int64(0), int64(5))

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, "owner witness check failed", "contribute", int64(0), int64(10))

	c.Invoke(t, 60, "contribute", int64(0), int64(60))
	c.InvokeFail(t, "invalid withdrawal bound", "contribute", int64(0), int64(50))
	c.Invoke(t, 100, "contribute", int64(0), int64(40))

	c.Invoke(t, 100, "contributionOf", int64(0), c.CommitteeHash)
	c.Invoke(t, 0, "contributionOf", int64(0), acc.ScriptHash())
}

func TestWithdraw(t *testing.T) {
	c, _, _ := preparePension(t, testMaxFunds, testCreationFee)

	// vesting period of 3 blocks, one block per invocation below
	createTestFund(t, c, 0, randomFundName(), 3)
	c.Invoke(t, 100, "contribute", int64(0), int64(100))

	c.InvokeFail(t, "vesting period not matured", "withdraw", int64(0), int64(50), "too early")
	// exactly at the vesting boundary, the bound is inclusive
	c.Invoke(t, 50, "withdraw", int64(0), int64(50), "matured")

	c.InvokeFail(t, "insufficient balance", "withdraw", int64(0), int64(200), "too much")
	c.InvokeFail(t, "invalid amount", "withdraw", int64(0), int64(0), "nothing")
	c.InvokeFail(t, "fund not found", "withdraw", int64(99), int64(10), "no fund")

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, "owner witness check failed", "withdraw", int64(0), int64(10), "not mine")

	c.Invoke(t, 0, "withdraw", int64(0), int64(50), "the rest")

	s, err := c.TestInvoke(t, "withdrawalOf", int64(0), c.CommitteeHash)
	require.NoError(t, err)
	rec := new(pensionrpc.PensionWithdrawalRecord)
	require.NoError(t, rec.FromStackItem(s.Pop().Item()))
	require.EqualValues(t, 50, rec.Amount.Int64())
	require.Equal(t, "the rest", rec.Reason)
}

func TestAddBeneficiary(t *testing.T) {
	c, _, _ := preparePension(t, testMaxFunds, testCreationFee)

	createTestFund(t, c, 0, randomFundName(), 30)

	beneficiary := c.NewAccount(t).ScriptHash()

	c.InvokeFail(t, "fund not found", "addBeneficiary", int64(99), beneficiary, int64(50))
	c.InvokeFail(t, "invalid beneficiary", "addBeneficiary", int64(0), c.CommitteeHash, int64(50))
	c.InvokeFail(t, "invalid beneficiary", "addBeneficiary", int64(0), []byte{1, 2, 3}, int64(50))
	c.InvokeFail(t, "invalid beneficiary share", "addBeneficiary", int64(0), beneficiary, int64(101))
	c.InvokeFail(t, "invalid beneficiary share", "addBeneficiary", int64(0), beneficiary, int64(-1))

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, "owner witness check failed", "addBeneficiary", int64(0), beneficiary, int64(50))

	c.Invoke(t, stackitem.Null{}, "addBeneficiary", int64(0), beneficiary, int64(30))

	s, err := c.TestInvoke(t, "beneficiaryOf", int64(0), beneficiary)
	require.NoError(t, err)
	rec := new(pensionrpc.PensionBeneficiaryRecord)
	require.NoError(t, rec.FromStackItem(s.Pop().Item()))
	require.EqualValues(t, 30, rec.Share.Int64())

	// repeated designation overwrites the previous one
	c.Invoke(t, stackitem.Null{}, "addBeneficiary", int64(0), beneficiary, int64(60))

	s, err = c.TestInvoke(t, "beneficiaryOf", int64(0), beneficiary)
	require.NoError(t, err)
	rec = new(pensionrpc.PensionBeneficiaryRecord)
	require.NoError(t, rec.FromStackItem(s.Pop().Item()))
	require.EqualValues(t, 60, rec.Share.Int64())

	// unknown pair reads as an empty record
	s, err = c.TestInvoke(t, "beneficiaryOf", int64(0), acc.ScriptHash())
	require.NoError(t, err)
	rec = new(pensionrpc.PensionBeneficiaryRecord)
	require.NoError(t, rec.FromStackItem(s.Pop().Item()))
	require.EqualValues(t, 0, rec.Share.Int64())
}

func TestUpdateFund(t *testing.T) {
	c, _, _ := preparePension(t, testMaxFunds, testCreationFee)

	nameA, nameB, nameC := randomFundName(), randomFundName(), randomFundName()
	createTestFund(t, c, 0, nameA, 30)
	createTestFund(t, c, 1, nameB, 30)

	c.InvokeFail(t, "fund not found", "updateFund", int64(99), nameC, int64(5))
	c.InvokeFail(t, "fund already exists", "updateFund", int64(0), nameB, int64(5))
	c.InvokeFail(t, "invalid fund name", "updateFund", int64(0), "", int64(5))
	c.InvokeFail(t, "invalid vesting period", "updateFund", int64(0), nameC, int64(400))

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, "owner witness check failed", "updateFund", int64(0), nameC, int64(5))

	c.Invoke(t, stackitem.Null{}, "updateFund", int64(0), nameC, int64(5))
	c.Invoke(t, false, "fundExists", nameA)
	c.Invoke(t, true, "fundExists", nameC)
	c.Invoke(t, 0, "fundIDByName", nameC)

	// renaming released the old name for future creations
	createTestFund(t, c, 2, nameA, 30)

	// keeping the current name is not a collision
	c.Invoke(t, stackitem.Null{}, "updateFund", int64(0), nameC, int64(6))

	s, err := c.TestInvoke(t, "lastUpdateOf", int64(0))
	require.NoError(t, err)
	rec := new(pensionrpc.PensionUpdateRecord)
	require.NoError(t, rec.FromStackItem(s.Pop().Item()))
	require.Equal(t, nameC, rec.Name)
	require.EqualValues(t, 6, rec.VestingPeriod.Int64())
	require.Equal(t, c.CommitteeHash, rec.Updater)
}

func TestUpdateFundResetsVesting(t *testing.T) {
	c, _, _ := preparePension(t, testMaxFunds, testCreationFee)

	name := randomFundName()
	createTestFund(t, c, 0, name, 2)
	c.Invoke(t, 100, "contribute", int64(0), int64(100))

	// the update restarts the vesting clock with the new period of 3 blocks
	c.Invoke(t, stackitem.Null{}, "updateFund", int64(0), name, int64(3))

	c.InvokeFail(t, "vesting period not matured", "withdraw", int64(0), int64(50), "one block")
	c.InvokeFail(t, "vesting period not matured", "withdraw", int64(0), int64(50), "two blocks")
	c.Invoke(t, 50, "withdraw", int64(0), int64(50), "three blocks")
}

func TestFundQueries(t *testing.T) {
	c, ct, _ := preparePension(t, testMaxFunds, testCreationFee)

	createTestFund(t, c, 0, randomFundName(), 30)
	createTestFund(t, c, 1, randomFundName(), 30)

	acc := c.NewAccount(t)
	ct.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(testCreationFee))

	cAcc := c.WithSigners(acc)
	cAcc.Invoke(t, 2, "createFund", acc.ScriptHash(), randomFundName(), int64(30),
		"Zug", "USD", int64(1), int64(100))

	c.Invoke(t, 3, "fundCount")

	s, err := c.TestInvoke(t, "funds")
	require.NoError(t, err)
	iter, ok := s.Pop().Value().(*storage.Iterator)
	require.True(t, ok)
	require.Len(t, iteratorToArray(iter), 3)

	s, err = c.TestInvoke(t, "fundsOf", c.CommitteeHash)
	require.NoError(t, err)
	iter, ok = s.Pop().Value().(*storage.Iterator)
	require.True(t, ok)
	require.Len(t, iteratorToArray(iter), 2)

	s, err = c.TestInvoke(t, "fundsOf", acc.ScriptHash())
	require.NoError(t, err)
	iter, ok = s.Pop().Value().(*storage.Iterator)
	require.True(t, ok)
	require.Len(t, iteratorToArray(iter), 1)

	_, err = c.TestInvoke(t, "getFund", int64(99))
	require.Error(t, err)
	require.Contains(t, err.Error(), "fund not found")

	_, err = c.TestInvoke(t, "fundIDByName", randomFundName())
	require.Error(t, err)
	require.Contains(t, err.Error(), "fund not found")
}

func TestCreateFundFeeAtomicity(t *testing.T) {
	c, ct := newPensionInvokers(t, int64(testMaxFunds), int64(testCreationFee))

	authority := c.NewAccount(t).ScriptHash()
	c.Invoke(t, stackitem.Null{}, "setAuthorityContract", authority)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	name := randomFundName()
	args := []interface{}{acc.ScriptHash(), name, int64(30), "Bern", "STX", int64(10), int64(1000)}

	// the owner holds no tokens, so the whole creation is rolled back
	cAcc.InvokeFail(t, "creation fee transfer failed", "createFund", args...)
	c.Invoke(t, 0, "fundCount")
	c.Invoke(t, false, "fundExists", name)
	ct.Invoke(t, 0, "balanceOf", authority)

	// an exact fee balance is enough
	ct.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(testCreationFee))
	cAcc.Invoke(t, 0, "createFund", args...)

	c.Invoke(t, 1, "fundCount")
	c.Invoke(t, true, "fundExists", name)
	ct.Invoke(t, testCreationFee, "balanceOf", authority)
	ct.Invoke(t, 0, "balanceOf", acc.ScriptHash())
}

func TestFundLifecycleScenario(t *testing.T) {
	// default configuration: capacity 100, creation fee 500
	c, ct := newPensionInvokers(t)

	authority := c.NewAccount(t).ScriptHash()
	c.Invoke(t, stackitem.Null{}, "setAuthorityContract", authority)

	owner := c.NewAccount(t)
	ct.Invoke(t, stackitem.Null{}, "mint", owner.ScriptHash(), int64(1000))

	cOwner := c.WithSigners(owner)
	cOwner.Invoke(t, 0, "createFund", owner.ScriptHash(), "Retire", int64(1),
		"Bern", "STX", int64(100), int64(10_000))

	ct.Invoke(t, 500, "balanceOf", authority)
	ct.Invoke(t, 500, "balanceOf", owner.ScriptHash())

	cOwner.Invoke(t, 1000, "contribute", int64(0), int64(1000))
	cOwner.Invoke(t, 500, "withdraw", int64(0), int64(500), "Emergency")

	f := fundState(t, c, 0)
	require.EqualValues(t, 500, f.Balance.Int64())

	s, err := c.TestInvoke(t, "withdrawalOf", int64(0), owner.ScriptHash())
	require.NoError(t, err)
	rec := new(pensionrpc.PensionWithdrawalRecord)
	require.NoError(t, rec.FromStackItem(s.Pop().Item()))
	require.EqualValues(t, 500, rec.Amount.Int64())
	require.Equal(t, "Emergency", rec.Reason)
}

func TestPensionUpdateAccess(t *testing.T) {
	c, _ := newPensionInvokers(t, int64(testMaxFunds), int64(testCreationFee))

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, "only committee can update contract", "update",
		[]byte{1, 2, 3}, []byte{1, 2, 3}, nil)
}
