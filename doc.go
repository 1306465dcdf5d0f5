/*
Package moneytext spells monetary amounts in Chinese financial numerals
(大写金额) and extracts amounts from free-form text.
It leverages the [decimal] package for exact fixed-point arithmetic and
combines it with a small [Currency] table covering the currencies the
converter understands.

# Features

  - Spelling of non-negative amounts below one trillion, for example
    1234.50 as 壹仟贰佰叁拾肆元伍角
  - Heuristic parsing of text such as "1,000.50美元" or "5万日元" into an
    amount, a magnitude word and a currency
  - Standard readings that name the currency, for example 壹佰美元
  - Immutable values, safe for use by multiple goroutines

# Spelling

[Render] rounds the amount half away from zero to 分 (hundredths), assigns
each digit a positional unit from 仟佰拾亿仟佰拾万仟佰拾元角分 and then
applies a fixed sequence of rewrite rules that drop silent zeros and unit
labels. Whole amounts end in 整.
Render never fails; invalid input yields [InvalidMarker] and amounts of one
trillion or more yield [TooLargeMarker]. [Spell] reports the same conditions
as [ErrInvalidNumeral] and [ErrAmountOutOfRange].

# Parsing

[ParseText] looks for the first numeral in the text and, independently,
for a magnitude word (亿 before 万) and a currency token anywhere in the
text. The scans are not anchored to the numeral; see [ParseText] for the
consequences.

# Exchange Rates

[ExchangeRate] converts amounts between currencies. [CrossRate] derives a
rate between two currencies from rates quoted against a common pivot, which
is how rate tables fetched from public APIs are usually shaped.
*/
package moneytext
