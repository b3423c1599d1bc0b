package vesting

// Number of accounts returned by a VestingAccounts query when no limit is given.
const DefaultQueryLimit = 10

// Upper bound on the number of accounts returned by one VestingAccounts query.
const MaxQueryLimit = 30

// Maximum number of release events in a cliff schedule.
const MaxCliffReleases = 256

// Maximum number of denominations named in a single claim.
const MaxClaimDenoms = 64

// Amounts are carried as 128-bit unsigned integers on the wire.
const MaxAmountBits = 128
