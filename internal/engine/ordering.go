package engine

import (
	"sort"

	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/board"
)

// checkBonus is added to a capture's MVV-LVA score when the capture also
// gives check (spec.md §4.D).
const checkBonus = 100

// OrderMoves implements order_moves(board, {quiescence}) -> list<Move>
// (spec.md §4.D). Moves are partitioned into five buckets — checkmates,
// promotions, captures, non-mating checks, quiet — and assembled in that
// order. A move that both checks and captures is treated as a capture
// unless it mates. In quiescence mode the quiet bucket is omitted.
//
// Evaluating "mating" requires making the move and checking IsCheckmate; the
// spec calls this authoritative even though it costs a make/unmake per
// checking move (spec.md §4.D).
func OrderMoves(pos *board.Position, quiescence bool) []board.Move {
	legal := pos.GenerateLegalMoves()
	n := legal.Len()

	var mates, promotions, captures, checks, quiet []board.Move

	for i := 0; i < n; i++ {
		m := legal.Get(i)

		isCapture := m.IsCapture(pos)
		undo := pos.MakeMove(m)
		gives := pos.InCheck()
		mates_ := gives && pos.IsCheckmate()
		pos.UnmakeMove(m, undo)

		switch {
		case mates_:
			mates = append(mates, m)
		case m.IsPromotion():
			promotions = append(promotions, m)
		case isCapture:
			captures = append(captures, m)
		case gives:
			checks = append(checks, m)
		default:
			quiet = append(quiet, m)
		}
	}

	// Early-exit rule: a non-empty mate bucket short-circuits everything else.
	if len(mates) > 0 {
		return mates
	}

	sortCapturesMVVLVA(pos, captures)

	total := len(promotions) + len(captures) + len(checks)
	if !quiescence {
		total += len(quiet)
	}
	ordered := make([]board.Move, 0, total)
	ordered = append(ordered, promotions...)
	ordered = append(ordered, captures...)
	ordered = append(ordered, checks...)
	if !quiescence {
		ordered = append(ordered, quiet...)
	}
	return ordered
}

// sortCapturesMVVLVA sorts captures descending by
// value(victim) - value(aggressor) + (checkBonus if gives check), the
// MVV-LVA-with-check-bonus key of spec.md §4.D. En passant's victim is the
// pawn on the adjacent square (offset ±8 toward the moving side).
func sortCapturesMVVLVA(pos *board.Position, captures []board.Move) {
	if len(captures) < 2 {
		return
	}
	keys := make([]int, len(captures))
	for i, m := range captures {
		keys[i] = captureKey(pos, m)
	}
	sort.SliceStable(captures, func(i, j int) bool {
		return keys[i] > keys[j]
	})
}

// captureKey scores a single capture for MVV-LVA ordering. Per spec.md §7,
// if the expected victim or aggressor piece is absent (a board-contract
// violation), the move is scored 0 and the caller is not aborted — see
// diagnostics.go for how the anomaly is surfaced.
func captureKey(pos *board.Position, m board.Move) int {
	aggressorPiece := pos.PieceAt(m.From())
	if aggressorPiece == board.NoPiece {
		reportAnomaly("MVV-LVA: no aggressor piece at from-square")
		return 0
	}

	var victimPiece board.Piece
	if m.IsEnPassant() {
		offset := board.Square(8)
		var target board.Square
		if pos.SideToMove == board.White {
			target = m.To() - offset
		} else {
			target = m.To() + offset
		}
		victimPiece = pos.PieceAt(target)
	} else {
		victimPiece = pos.PieceAt(m.To())
	}

	if victimPiece == board.NoPiece {
		reportAnomaly("MVV-LVA: no victim piece at expected capture square")
		return 0
	}

	key := PieceValue(victimPiece.Type()) - PieceValue(aggressorPiece.Type())

	undo := pos.MakeMove(m)
	if pos.InCheck() {
		key += checkBonus
	}
	pos.UnmakeMove(m, undo)

	return key
}
