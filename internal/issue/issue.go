// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"errors"

	"github.com/namekit/namekit/pkg/names"
	"github.com/namekit/namekit/pkg/types"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry.
type Id int

const (
	PreconditionViolatedId Id = iota + 1
	PostconditionViolatedId
	InvariantViolatedId
	ServiceFailureId
	MalformedDataStringId
	InvalidDelimiterId
	ConfigLoadFailedId
	TreeParseErrorId
)

type (
	// MarkdownMsg is the Markdown body of an Issue.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	// Issue is a catalog entry explaining one category of failure.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
		extLinks []HttpLink
	}
)

// Id returns the catalog identifier.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw Markdown text.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// DocLinks returns a copy of the documentation links.
func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

// ExtLinks returns a copy of the external links.
func (i *Issue) ExtLinks() []HttpLink { return slices.Clone(i.extLinks) }

// Render formats the issue for the terminal. stylePath is a glamour style
// name such as "dark", "light", or "notty".
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if links := append(i.DocLinks(), i.extLinks...); len(links) > 0 {
		md += "\n\n## See also\n"
		for _, link := range links {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	preconditionViolatedIssue = &Issue{
		id: PreconditionViolatedId,
		mdMsg: `
# Invalid argument

The operation was refused before anything changed.

## Common causes
- An index outside the name (valid positions are 0 to count-1, or 0 to count for insert)
- A delimiter that is not exactly one character, or is the escape character ` + "`\\`" + `
- A component that contains an unmasked delimiter when using the ` + "`string`" + ` variant

## Things you can try
- Mask delimiters inside components with ` + "`\\`" + `, for example ` + "`a\\.b`" + `
- Switch to the ` + "`array`" + ` variant, which stores components verbatim:
~~~
$ namekit --variant array inspect 'a.b'
~~~`,
	}

	postconditionViolatedIssue = &Issue{
		id: PostconditionViolatedId,
		mdMsg: `
# Internal check failed

An operation produced a result that breaks its own guarantee. This is a bug
in namekit, not in your input.

## Things you can try
- Re-run with ` + "`--verbose`" + ` and include the error chain in a bug report`,
	}

	invariantViolatedIssue = &Issue{
		id: InvariantViolatedId,
		mdMsg: `
# Inconsistent state

A name or tree node is in a state that should be impossible, for example a
cached component count that disagrees with the stored text, or a tree node
with an empty base name.

## Things you can try
- Check the tree file for entries with an empty ` + "`name`" + `
- Re-run with ` + "`--verbose`" + ` to see which object failed`,
	}

	serviceFailureIssue = &Issue{
		id: ServiceFailureId,
		mdMsg: `
# Operation aborted

A higher-level operation such as a tree search failed because one of its
steps failed. The underlying cause is listed in the error chain.

## Things you can try
- Re-run with ` + "`--verbose`" + ` to see the full chain`,
	}

	malformedDataStringIssue = &Issue{
		id: MalformedDataStringId,
		mdMsg: `
# Malformed data string

Data strings escape ` + "`.`" + ` and ` + "`\\`" + ` with a backslash. The input ends in a
backslash that does not escape anything.

## Things you can try
- Double a literal trailing backslash: ` + "`a.b\\\\`" + `
- Produce data strings with ` + "`namekit escape`" + ` instead of by hand`,
	}

	invalidDelimiterIssue = &Issue{
		id: InvalidDelimiterId,
		mdMsg: `
# Invalid delimiter

A delimiter must be exactly one character and must not be ` + "`\\`" + `.

## Things you can try
~~~
$ namekit --delimiter / inspect 'usr/bin'
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

The configuration file could not be read or does not match the schema.

## Things you can try
- Print the active settings:
~~~
$ namekit config show
~~~
- Write a fresh default file:
~~~
$ namekit config init
~~~

## Example
~~~cue
delimiter: "/"
variant:   "string"
ui: {
	color_scheme: "auto"
	verbose:      false
}
~~~`,
	}

	treeParseErrorIssue = &Issue{
		id: TreeParseErrorId,
		mdMsg: `
# Failed to load tree file

Tree files are CUE (` + "`.cue`" + `) or TOML (` + "`.toml`" + `) documents with a list of entries.

## Example
~~~cue
entries: [
	{name: "usr", children: [
		{name: "bin", children: [{name: "ls", kind: "file"}]},
	]},
	{name: "tools", kind: "link", target: "/usr/bin"},
]
~~~

## Common issues
- An entry with an empty ` + "`name`" + `
- A ` + "`kind`" + ` other than directory, file, or link
- A link ` + "`target`" + ` that does not exist in the tree`,
	}

	issues = map[Id]*Issue{
		preconditionViolatedIssue.Id():  preconditionViolatedIssue,
		postconditionViolatedIssue.Id(): postconditionViolatedIssue,
		invariantViolatedIssue.Id():     invariantViolatedIssue,
		serviceFailureIssue.Id():        serviceFailureIssue,
		malformedDataStringIssue.Id():   malformedDataStringIssue,
		invalidDelimiterIssue.Id():      invalidDelimiterIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		treeParseErrorIssue.Id():        treeParseErrorIssue,
	}
)

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

// All returns a copy of the catalog.
func All() map[Id]*Issue {
	return maps.Clone(issues)
}

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	result := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		result = append(result, i)
	}
	slices.SortFunc(result, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return result
}

// ForError picks the catalog entry that best explains err. An Issue set on
// an ActionableError wins; otherwise the most specific known cause decides.
func ForError(err error) *Issue {
	if err == nil {
		return nil
	}
	var ae *ActionableError
	if errors.As(err, &ae) && ae.Issue != 0 {
		return Get(ae.Issue)
	}

	switch {
	case errors.Is(err, names.ErrMalformedEscape):
		return Get(MalformedDataStringId)
	case errors.Is(err, types.ErrInvalidDelimiterChar):
		return Get(InvalidDelimiterId)
	case errors.Is(err, names.ErrServiceFailure):
		return Get(ServiceFailureId)
	case errors.Is(err, names.ErrInvariant):
		return Get(InvariantViolatedId)
	case errors.Is(err, names.ErrPostcondition):
		return Get(PostconditionViolatedId)
	case errors.Is(err, names.ErrPrecondition):
		return Get(PreconditionViolatedId)
	default:
		return nil
	}
}
