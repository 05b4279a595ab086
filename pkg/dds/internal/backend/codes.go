package backend

// Engine status codes.
const (
	CodeNoFault        = 1
	CodeUnknownFault   = -1
	CodeZeroCards      = -2
	CodeTargetTooHigh  = -3
	CodeDuplicateCards = -4
	CodeTargetWrongLo  = -5
	CodeTargetWrongHi  = -7
	CodeSolnsWrongLo   = -8
	CodeSolnsWrongHi   = -9
	CodeTooManyCards   = -10
	CodeSuitOrRank     = -12
	CodePlayedCard     = -13
	CodeCardCount      = -14
	CodeThreadIndex    = -15
	CodeModeWrongLo    = -16
	CodeModeWrongHi    = -17
	CodeTrumpWrong     = -18
	CodeFirstWrong     = -19
	CodePlayFault      = -98
	CodePBNFault       = -99
	CodeTooManyBoards  = -101
	CodeThreadCreate   = -102
	CodeThreadWait     = -103
	CodeThreadMissing  = -104
	CodeNoSuit         = -201
	CodeTooManyTables  = -202
	CodeChunkSize      = -301
	CodeNotBuilt       = -1000
)

var codeText = map[int]string{
	CodeNoFault:        "success",
	CodeUnknownFault:   "general error",
	CodeZeroCards:      "zero cards",
	CodeTargetTooHigh:  "target exceeds number of tricks",
	CodeDuplicateCards: "cards duplicated",
	CodeTargetWrongLo:  "target is less than -1",
	CodeTargetWrongHi:  "target is higher than 13",
	CodeSolnsWrongLo:   "solutions parameter is less than 1",
	CodeSolnsWrongHi:   "solutions parameter is higher than 3",
	CodeTooManyCards:   "too many cards",
	CodeSuitOrRank:     "currentTrickSuit or currentTrickRank has wrong data",
	CodePlayedCard:     "played card also remains in a hand",
	CodeCardCount:      "wrong number of remaining cards in a hand",
	CodeThreadIndex:    "thread index is not 0 .. maximum",
	CodeModeWrongLo:    "mode parameter is less than 0",
	CodeModeWrongHi:    "mode parameter is higher than 2",
	CodeTrumpWrong:     "trump is not in 0 .. 4",
	CodeFirstWrong:     "first is not in 0 .. 3",
	CodePlayFault:      "AnalysePlay input error",
	CodePBNFault:       "PBN string error",
	CodeTooManyBoards:  "too many boards requested",
	CodeThreadCreate:   "could not create threads",
	CodeThreadWait:     "something failed waiting for thread to end",
	CodeThreadMissing:  "multi-threading system not present",
	CodeNoSuit:         "denomination filter vector has no entries",
	CodeTooManyTables:  "too many DD tables requested",
	CodeChunkSize:      "chunk size is less than 1",
	CodeNotBuilt:       "native engine not built",
}

// Describe returns the documented meaning of an engine status code.
func Describe(code int) string {
	if text, ok := codeText[code]; ok {
		return text
	}
	if code >= 0 {
		return "success"
	}
	return "unknown engine fault"
}

// IsInputFault reports whether code blames the caller's input rather than
// the engine or environment.
func IsInputFault(code int) bool {
	switch code {
	case CodeZeroCards, CodeTargetTooHigh, CodeDuplicateCards, CodeTargetWrongLo,
		CodeTargetWrongHi, CodeSolnsWrongLo, CodeSolnsWrongHi, CodeTooManyCards,
		CodeSuitOrRank, CodePlayedCard, CodeCardCount, CodeModeWrongLo,
		CodeModeWrongHi, CodeTrumpWrong, CodeFirstWrong, CodePlayFault,
		CodePBNFault, CodeTooManyBoards, CodeNoSuit, CodeTooManyTables:
		return true
	}
	return false
}
