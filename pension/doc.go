/*
Pension contract is the registry of pension funds.

Each fund is a named account owned by a single principal. The owner pays a
creation fee in pension tokens to the authority contract, then contributes
currency units to the fund balance and withdraws them back after the fund's
vesting period has elapsed. The owner may also designate percentage shares
of the fund for other principals and update the fund name and vesting
period, which restarts the vesting clock.

Fund ids are dense, zero based and assigned in creation order. Fund names
are unique across the registry; renaming a fund frees its old name. The
total number of funds is capped, the cap and the creation fee are managed
by the contract admin. Fee collection starts working only after the admin
has configured the authority contract, so CreateFund fails until then.

# Contract notifications

FundCreated notification. This notification is produced when a new fund is
registered.

	FundCreated:
	  - name: fundID
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: name
	    type: String

ContributionMade notification. This notification is produced when a fund
balance is replenished.

	ContributionMade:
	  - name: fundID
	    type: Integer
	  - name: contributor
	    type: Hash160
	  - name: amount
	    type: Integer

WithdrawalMade notification. This notification is produced when a fund
balance is reduced by a matured withdrawal.

	WithdrawalMade:
	  - name: fundID
	    type: Integer
	  - name: withdrawer
	    type: Hash160
	  - name: amount
	    type: Integer

BeneficiaryDesignated notification. This notification is produced when a
fund owner designates a share for another principal.

	BeneficiaryDesignated:
	  - name: fundID
	    type: Integer
	  - name: beneficiary
	    type: Hash160
	  - name: share
	    type: Integer

FundUpdated notification. This notification is produced when a fund name
or vesting period is changed.

	FundUpdated:
	  - name: fundID
	    type: Integer
	  - name: name
	    type: String
*/
package pension
