// bitcalc is a thin command line front end over the bitint library: it
// parses unsigned integer operands, runs one arithmetic operation, and
// prints the result.
package main

func main() {
	execute()
}
