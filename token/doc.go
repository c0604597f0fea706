/*
Token contract is the currency of the pension fund registry.

It is a NEP-17 compatible contract, so it can be tracked and controlled
by N3 compatible network monitors and wallet software. The pension
contract charges fund creation fees in this token, transferring them
from the fund owner to the authority contract within the creation call.

Tokens are minted to and burned from accounts by the committee. Regular
transfers require the sender's witness. Transfer reports failure with a
false return value rather than a panic, letting calling contracts choose
whether a failed fee payment aborts their own invocation.

# Contract notifications

Transfer notification. This is NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Mint notification. This notification is produced when the committee
replenishes an account.

	Mint:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification. This notification is produced when the committee
reduces an account.

	Burn:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package token
