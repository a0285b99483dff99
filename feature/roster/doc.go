// Package roster builds fleet rosters from client captures and writes the
// contribution reports.
//
// # Loading
//
// Two payloads feed a fleet:
//   - Holdings (args[0].container.states): per-holding donation records keyed
//     by "character@account" display names. Amounts accumulate.
//   - Members (args[0].container.members): the roster with officer rank and
//     last logout per character. Values replace earlier ones.
//
// A payload that lacks the expected array fails with ErrStructureNotFound; an
// unparsable logout time fails with ErrMalformedTimestamp. Both are fatal to
// the report being built.
//
// # Grand Fleets
//
// MergeFleets unions several fleets by account name. Accounts seen first are
// deep-copied; characters joining an existing account are shared with their
// source fleet and recorded as Aliased in the grand fleet's provenance. A
// character name already taken in the target account is stored under
// "name|fleet".
//
// # Reports
//
//   - contribution: account, total
//   - promotion: account, rank, total (grand fleet)
//   - holdings: account, holding, amount
//   - activity: account, rank, last logout
package roster
