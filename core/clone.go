package core

import "strings"

// VariantTag classifies one body of a multiversioned function.
type VariantTag int

const (
	TagNone VariantTag = iota
	TagNumbered
	TagDefault
	TagResolver
)

func (t VariantTag) String() string {
	switch t {
	case TagNumbered:
		return "numbered"
	case TagDefault:
		return "default"
	case TagResolver:
		return "resolver"
	default:
		return "none"
	}
}

// NameOptions describes how clone variants are spelled by the host.
type NameOptions struct {
	// Separator introduces the variant suffix, e.g. "." in "foo.avx2".
	Separator string

	// Resolver and Default are the reserved suffix words, without the
	// separator.
	Resolver string
	Default  string
}

// DefaultNameOptions returns the naming used by target-clone compilers:
// "foo.avx2", "foo.default" and "foo.resolver".
func DefaultNameOptions() NameOptions {
	return NameOptions{
		Separator: ".",
		Resolver:  "resolver",
		Default:   "default",
	}
}

// ResolverSuffix returns the full suffix that marks a resolver.
func (o NameOptions) ResolverSuffix() string {
	return o.Separator + o.Resolver
}

// DefaultSuffix returns the full suffix given to the default variant.
func (o NameOptions) DefaultSuffix() string {
	return o.Separator + o.Default
}

// Classification is the result of splitting a function name into its clone
// family and variant.
type Classification struct {
	Base   string
	Suffix string
	Tag    VariantTag
}

// Classify decides whether the function called name belongs to a clone
// family. hasCloneMarker reports whether the host marks the function as
// having target-specific variants. Resolvers and plain functions are
// rejected; a rejected resolver still comes back tagged TagResolver.
func Classify(
	name string,
	hasCloneMarker bool,
	opts NameOptions,
) (Classification, bool) {
	if opts.Separator != "" {
		if pos := strings.Index(name, opts.Separator); pos >= 0 {
			c := Classification{
				Base:   name[:pos],
				Suffix: name[pos:],
				Tag:    TagNumbered,
			}

			switch c.Suffix {
			case opts.ResolverSuffix():
				c.Tag = TagResolver
				return c, false
			case opts.DefaultSuffix():
				c.Tag = TagDefault
			}

			return c, true
		}
	}

	if hasCloneMarker {
		return Classification{
			Base:   name,
			Suffix: opts.DefaultSuffix(),
			Tag:    TagDefault,
		}, true
	}

	return Classification{Base: name, Tag: TagNone}, false
}
