package analyzer

import "strings"

// stopwords holds words excluded from topic and keyword extraction:
// English function words, contractions, and web boilerplate that
// dominates scraped pages.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "almost": {}, "along": {}, "already": {}, "also": {},
	"although": {}, "always": {}, "am": {}, "among": {}, "an": {}, "and": {},
	"another": {}, "any": {}, "anyone": {}, "anything": {}, "are": {},
	"aren't": {}, "around": {}, "as": {}, "at": {},

	"back": {}, "be": {}, "became": {}, "because": {}, "become": {},
	"been": {}, "before": {}, "behind": {}, "being": {}, "below": {},
	"beside": {}, "besides": {}, "between": {}, "beyond": {}, "both": {},
	"but": {}, "by": {},

	"can": {}, "can't": {}, "cannot": {}, "could": {}, "couldn't": {},

	"did": {}, "didn't": {}, "do": {}, "does": {}, "doesn't": {},
	"doing": {}, "don't": {}, "done": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "enough": {}, "etc": {},
	"even": {}, "ever": {}, "every": {}, "everyone": {}, "everything": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "hadn't": {}, "has": {}, "hasn't": {}, "have": {},
	"haven't": {}, "having": {}, "he": {}, "hence": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {},
	"his": {}, "how": {}, "however": {},

	"i": {}, "if": {}, "in": {}, "indeed": {}, "into": {}, "is": {},
	"isn't": {}, "it": {}, "it's": {}, "its": {}, "itself": {},

	"just": {}, "keep": {},

	"last": {}, "least": {}, "less": {}, "let": {}, "like": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "maybe": {}, "me": {},
	"might": {}, "mine": {}, "more": {}, "most": {}, "mostly": {},
	"much": {}, "must": {}, "my": {}, "myself": {},

	"neither": {}, "never": {}, "next": {}, "no": {}, "nobody": {},
	"none": {}, "nor": {}, "not": {}, "nothing": {}, "now": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "onto": {}, "or": {}, "other": {}, "others": {},
	"otherwise": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {},
	"over": {}, "own": {},

	"per": {}, "perhaps": {}, "please": {},

	"rather": {}, "same": {}, "see": {}, "seem": {}, "seemed": {},
	"seems": {}, "several": {}, "she": {}, "should": {}, "shouldn't": {},
	"since": {}, "so": {}, "some": {}, "somehow": {}, "someone": {},
	"something": {}, "sometimes": {}, "still": {}, "such": {},

	"take": {}, "than": {}, "that": {}, "that's": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "themselves": {}, "then": {},
	"there": {}, "therefore": {}, "these": {}, "they": {}, "this": {},
	"those": {}, "through": {}, "throughout": {}, "thus": {}, "to": {},
	"together": {}, "too": {}, "toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},
	"used": {}, "using": {},

	"very": {}, "via": {},

	"was": {}, "wasn't": {}, "we": {}, "well": {}, "were": {},
	"weren't": {}, "what": {}, "when": {}, "whenever": {}, "where": {},
	"whereas": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"whoever": {}, "whose": {}, "why": {}, "will": {}, "with": {},
	"within": {}, "without": {}, "won't": {}, "would": {}, "wouldn't": {},

	"yet": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {},

	// Web and navigation noise common on scraped pages.
	"click": {}, "clicked": {}, "clicking": {},
	"button": {}, "link": {}, "links": {}, "menu": {},
	"page": {}, "pages": {}, "website": {}, "site": {},
	"home": {}, "homepage": {},
	"search": {}, "searching": {},
	"loading": {}, "loaded": {}, "load": {},
}

// IsStopword reports whether word is filtered from frequency analysis.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}
