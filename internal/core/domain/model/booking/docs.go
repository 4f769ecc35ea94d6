// Package booking implements the customer booking session: the multi-step
// wizard, its mutable draft, and the finalized order request handed to
// checkout.
//
// The package includes:
//   - Step: the wizard's linear state machine (Location -> Services -> Schedule -> Review)
//   - Draft: the in-progress, unpersisted record of one session's inputs
//   - Wizard: transition validation, backward navigation, edit jumps, and live quoting
//   - OrderRequest: the structured record produced at the review step
//
// Key business rules:
//   - The wizard may not advance past Location until the zip classifies into
//     a serviceable zone; outside zips are rejected with no state change.
//   - Services and Schedule have explicit guard conditions (positive weight or
//     at least one item; a pickup date and time slot).
//   - Stepping back preserves all previously entered fields.
//   - Edit jumps are only available from Review, and only to earlier steps.
//   - The draft lives exactly as long as its session and is never persisted.
package booking
