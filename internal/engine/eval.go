package engine

import "github.com/NoahBorch/Obi-Pawn-Kenobot/internal/board"

// Evaluate implements evaluate(board) -> int (spec.md §4.B).
//
// Terminal positions short-circuit: checkmate returns -CheckmateBase (the
// mover has been mated — the sign is re-applied by the caller the same way
// every other score is, so this is already "from the mover's perspective");
// any other terminal state (stalemate, insufficient material, the 50-move
// auto-draw) returns 0. Otherwise the score is material + PST +
// endgame_incentive computed from White's perspective, then negated if Black
// is to move.
func Evaluate(pos *board.Position, phase *PhaseTracker) int {
	if pos.IsCheckmate() {
		return -CheckmateBase
	}
	if pos.IsDraw() {
		return 0
	}

	p := phase.Calculate(pos)

	score := material(pos) + pstScore(pos, p)
	if p == Endgame {
		score += endgameIncentive(pos)
	}

	if pos.SideToMove == board.Black {
		score = -score
	}
	return score
}

// material sums piece values, White positive and Black negative.
func material(pos *board.Position) int {
	total := 0
	for pt := board.Pawn; pt <= board.King; pt++ {
		total += pos.Pieces[board.White][pt].PopCount() * PieceValue(pt)
		total -= pos.Pieces[board.Black][pt].PopCount() * PieceValue(pt)
	}
	return total
}

// pstScore sums table[phase][piece_type][square] over every piece on the
// board, mirroring the square vertically for Black before lookup (spec.md
// §4.B, §9: "PST lookups are cleanest as a table [phase][piece_type][square],
// indexed directly; square mirroring applied only for the non-White side").
func pstScore(pos *board.Position, p Phase) int {
	total := 0
	tables := &psts[p]
	for pt := board.Pawn; pt <= board.King; pt++ {
		table := &tables[pt]

		bb := pos.Pieces[board.White][pt]
		for bb != 0 {
			sq := bb.PopLSB()
			total += table[sq]
		}

		bb = pos.Pieces[board.Black][pt]
		for bb != 0 {
			sq := bb.PopLSB()
			total -= table[sq.Mirror()]
		}
	}
	return total
}

// endgameIncentive implements spec.md §4.B's endgame term: 50 minus the
// Chebyshev distance between the kings. Evaluate adds it to the
// White-relative score before the side-to-move negation, so closer kings
// count in White's favour whichever side is to move.
func endgameIncentive(pos *board.Position) int {
	return 50 - chebyshevDistance(pos.KingSquare[board.White], pos.KingSquare[board.Black])
}

// chebyshevDistance is max(|Δfile|, |Δrank|) between two squares — the
// board package has no king-distance helper of its own, so this is a small
// addition local to the evaluator rather than a change to the rules engine.
func chebyshevDistance(a, b board.Square) int {
	df := a.File() - b.File()
	if df < 0 {
		df = -df
	}
	dr := a.Rank() - b.Rank()
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

// psts is table[phase][piece_type][square] (spec.md §9's recommended
// layout), built once at package init and never mutated (spec.md §3's PST
// invariant). Every table is authored from White's perspective, rank 1
// first, per spec.md §3.
var psts = [3][6][64]int{
	Opening: {
		board.Pawn:   pawnOpeningPST,
		board.Knight: knightOpeningPST,
		board.Bishop: bishopOpeningPST,
		board.Rook:   rookOpeningPST,
		board.Queen:  queenOpeningPST,
		board.King:   kingOpeningPST,
	},
	Midgame: {
		board.Pawn:   pawnMidgamePST,
		board.Knight: knightMidgamePST,
		board.Bishop: bishopMidgamePST,
		board.Rook:   rookMidgamePST,
		board.Queen:  queenMidgamePST,
		board.King:   kingMidgamePST,
	},
	Endgame: {
		board.Pawn:   pawnEndgamePST,
		board.Knight: knightEndgamePST,
		board.Bishop: bishopEndgamePST,
		board.Rook:   rookEndgamePST,
		board.Queen:  queenEndgamePST,
		board.King:   kingEndgamePST,
	},
}

// The tables below are laid out as eight rows of eight, rank 1 first (row 0
// is a1..h1, row 7 is a8..h8), so a White piece on square sq is looked up
// directly at table[sq] with no transformation; Black pieces mirror sq
// first (see pstScore).

var pawnOpeningPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnMidgamePST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -10, -10, 10, 10, 5,
	5, -5, -10, 5, 5, -10, -5, 5,
	0, 0, 5, 25, 25, 5, 0, 0,
	10, 10, 15, 30, 30, 15, 10, 10,
	25, 25, 30, 35, 35, 30, 25, 25,
	60, 60, 60, 60, 60, 60, 60, 60,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnEndgamePST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	20, 20, 20, 20, 20, 20, 20, 20,
	30, 30, 30, 30, 30, 30, 30, 30,
	45, 45, 45, 45, 45, 45, 45, 45,
	65, 65, 65, 65, 65, 65, 65, 65,
	90, 90, 90, 90, 90, 90, 90, 90,
	120, 120, 120, 120, 120, 120, 120, 120,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightOpeningPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var knightMidgamePST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var knightEndgamePST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 20, 25, 25, 20, 5, -30,
	-30, 0, 20, 25, 25, 20, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopOpeningPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var bishopMidgamePST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var bishopEndgamePST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 10, 15, 15, 10, 5, -10,
	-10, 5, 10, 15, 15, 10, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookOpeningPST = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var rookMidgamePST = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	10, 15, 15, 15, 15, 15, 15, 10,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var rookEndgamePST = [64]int{
	0, 0, 5, 5, 5, 5, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 5, 5, 5, 5, 5, 5, 5,
	10, 10, 10, 10, 10, 10, 10, 10,
	15, 15, 15, 15, 15, 15, 15, 15,
	10, 10, 10, 10, 10, 10, 10, 10,
}

var queenOpeningPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var queenMidgamePST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var queenEndgamePST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 5, 10, 10, 10, 10, 5, -10,
	-5, 5, 10, 15, 15, 10, 5, -5,
	-5, 5, 10, 15, 15, 10, 5, -5,
	-10, 5, 10, 10, 10, 10, 5, -10,
	-10, 0, 5, 5, 5, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingOpeningPST = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingMidgamePST = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingEndgamePST = [64]int{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}
