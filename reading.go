package moneytext

import "strings"

// Reading returns the standard reading of an amount: its spelled-out form
// with the currency unit named.
// For [CNY] (and [XXX]) this is the same as [Amount.Text]. For other
// currencies the trailing 整 is dropped and every 元 is replaced with the
// unit of the currency, so USD 100 reads 壹佰美元 and RUB 2.5 reads 贰卢布伍角.
// Marker strings are returned unchanged.
func Reading(a Amount) string {
	s, err := spellDecimal(a.Decimal())
	if err != nil {
		return marker(s, err)
	}
	switch c := a.Curr(); c {
	case CNY, XXX:
		return s
	default:
		s = strings.TrimSuffix(s, "整")
		return strings.ReplaceAll(s, "元", c.Unit())
	}
}
