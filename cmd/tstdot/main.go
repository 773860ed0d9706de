// Command tstdot reads words from stdin, one per line, and prints the
// ternary search tree built from them as a Graphviz digraph.
//
//	echo $'tesa\nterm' | tstdot | dot -Tpng > tree.png
package main

func main() {
	Execute()
}
