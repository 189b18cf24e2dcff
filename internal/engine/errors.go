package engine

// This file documents the error taxonomy of spec.md §7; most of it is not a
// Go error type at all, because the search is designed to never abort:
//
//   - NoLegalMoves is not an error. FindBestMove returns (board.NoMove, 0)
//     and leaves it to the caller to decide, from the position, whether that
//     means checkmate or stalemate (board.Position.IsCheckmate/IsStalemate).
//   - BoardContractViolation is reported through the Diagnostics sink (see
//     diagnostics.go); the offending move is scored 0 and the search
//     continues.
//   - DeadlineExceeded is a plain control signal, not an error: a budget
//     expiring causes the driver to return the best result found so far.
//   - InvalidConfiguration is the one real error in this package, returned
//     by config.Config.Validate and surfaced from engine.New before any
//     search begins.
