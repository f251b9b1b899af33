//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package preprocessing

import "regexp"

// default placeholder tokens
const (
	URLToken      = "_URL_"
	EmailToken    = "_EMAIL_"
	PhoneToken    = "_PHONE_"
	NumberToken   = "_NUMBER_"
	CurrencyToken = "_CUR_"
	EmojiToken    = "_EMOJI_"
	HashtagToken  = "_TAG_"
	UserToken     = "_USER_"
)

var (
	replaceURLRe   = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s<>"]+`)
	replaceEmailRe = regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)
	replacePhoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[ .-]?)?(?:\(\d{2,4}\)[ .-]?)?\d{3}[ .-]\d{3,4}\b`)
	// optional sign, grouped or plain digits, optional decimal/exponent
	replaceNumberRe   = regexp.MustCompile(`[+-]?\d+(?:[.,]\d+)*(?:[eE][+-]?\d+)?`)
	replaceCurrencyRe = regexp.MustCompile(`\p{Sc}`)
	replaceEmojiRe    = regexp.MustCompile(`[\x{2600}-\x{27BF}\x{1F1E6}-\x{1F1FF}\x{1F300}-\x{1F6FF}\x{1F900}-\x{1F9FF}\x{1FA70}-\x{1FAFF}]`)
	replaceHashtagRe  = regexp.MustCompile(`(^|[^\w&])#(\pL[\pL\pN_]*)`)
	replaceUserRe     = regexp.MustCompile(`(^|[^\w@.])@(\pL[\pL\pN_]*)`)
)

// ReplaceURLs substitutes web URLs with repl.
func ReplaceURLs(repl string) Transform {
	return func(text string) string {
		return replaceURLRe.ReplaceAllString(text, repl)
	}
}

// ReplaceEmails substitutes email addresses with repl.
func ReplaceEmails(repl string) Transform {
	return func(text string) string {
		return replaceEmailRe.ReplaceAllString(text, repl)
	}
}

// ReplacePhoneNumbers substitutes phone numbers with repl.
func ReplacePhoneNumbers(repl string) Transform {
	return func(text string) string {
		return replacePhoneRe.ReplaceAllString(text, repl)
	}
}

// ReplaceNumbers substitutes numerals with repl.
func ReplaceNumbers(repl string) Transform {
	return func(text string) string {
		return replaceNumberRe.ReplaceAllString(text, repl)
	}
}

// ReplaceCurrencySymbols substitutes currency symbols with repl.
func ReplaceCurrencySymbols(repl string) Transform {
	return func(text string) string {
		return replaceCurrencyRe.ReplaceAllString(text, repl)
	}
}

// ReplaceEmojis substitutes emoji and pictograph characters with repl.
func ReplaceEmojis(repl string) Transform {
	return func(text string) string {
		return replaceEmojiRe.ReplaceAllString(text, repl)
	}
}

// ReplaceHashtags substitutes #hashtags with repl.
func ReplaceHashtags(repl string) Transform {
	return func(text string) string {
		return replaceHashtagRe.ReplaceAllString(text, "${1}"+repl)
	}
}

// ReplaceUserHandles substitutes @user handles with repl.
func ReplaceUserHandles(repl string) Transform {
	return func(text string) string {
		return replaceUserRe.ReplaceAllString(text, "${1}"+repl)
	}
}
