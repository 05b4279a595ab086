// Package bridge models a contract bridge deal as a compact bitboard and
// converts it to and from PBN deal notation.
//
// A Deal is a fixed 26-byte value: one 16-bit word per rank, where bit
// 4*seat+suit records whether that seat holds that rank in that suit. Deals
// are plain values and are copied freely between layers.
//
//	d, err := bridge.ParseDeal("N:954.QJT3.AJT.QJ6 KJT2.87.5.AK9875 AQ86.K652.86432. 73.A94.KQ97.T432")
//	if err != nil {
//	    return err
//	}
//	d.Has(bridge.North, bridge.Spades, bridge.Nine) // true
//	d.String()                                       // same text, already canonical
//
// Serialization is canonical: the output is always anchored at North and
// ranks are always listed from Ace down to Two, so any accepted input maps
// to exactly one string.
package bridge
