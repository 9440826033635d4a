package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LayoutWrapper wraps children in layout chrome. Children are rendered unchanged.
type LayoutWrapper func(children ...g.Node) g.Node

// ContainerOuter constrains content to the outer page width.
func ContainerOuter(children ...g.Node) g.Node {
	return Div(Class("sm:px-8"),
		Div(append([]g.Node{Class("mx-auto w-full max-w-7xl lg:px-8")}, children...)...),
	)
}

// ContainerInner adds the inner padding and the narrower max width.
func ContainerInner(children ...g.Node) g.Node {
	return Div(Class("relative px-4 sm:px-8 lg:px-12"),
		Div(append([]g.Node{Class("mx-auto max-w-2xl lg:max-w-5xl")}, children...)...),
	)
}

// Container nests ContainerInner inside ContainerOuter.
func Container(children ...g.Node) g.Node {
	return ContainerOuter(ContainerInner(children...))
}
