package romanise

import "errors"

// ErrMalformedTable indicates a rule table with an unpaired token: every
// pattern needs a replacement. Loading fails rather than silently
// dropping the trailing rule.
var ErrMalformedTable = errors.New("romanise: unpaired token in rule table")

// ErrAmbiguousTable indicates two rules for the same whole-field pattern
// in one group. Which one fires would depend on table order, so this is
// rejected as a table-authoring defect.
var ErrAmbiguousTable = errors.New("romanise: duplicate pattern in rule table")
