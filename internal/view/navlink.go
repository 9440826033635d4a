package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NavLinkClass is applied to every navigation link.
const NavLinkClass = "transition hover:text-red-500 dark:hover:text-red-400"

// LinkRenderer turns a path and its children into a navigable element.
// Attribute nodes among the children belong to the link element itself.
type LinkRenderer func(href string, children ...g.Node) g.Node

// AnchorLink renders a plain <a> element. href is passed through uninterpreted.
func AnchorLink(href string, children ...g.Node) g.Node {
	return A(append([]g.Node{Href(href)}, children...)...)
}

// NavLink renders one navigation link through link, with the hover transition styling.
func NavLink(link LinkRenderer, href string, children ...g.Node) g.Node {
	if link == nil {
		link = AnchorLink
	}
	return link(href, append([]g.Node{Class(NavLinkClass)}, children...)...)
}
