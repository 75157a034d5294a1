package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"hex/agent"
	"hex/engine"
	"hex/game"
)

const welcomeArt = `
    )            )           *                       (
 ( /(         ( /(         (  ` + "`" + `       (      *   )   )\ )
 )\())  (     )\())        )\))(      )\   ` + "`" + ` )  /(  (()/(
((_)\   )\   ((_)\     __ ((_)()\   (((_)   ( )(_))  /(_))
 _((_) ((_)  __((_)   / / (_()((_)  )\___  (_(_())  (_))
| || | | __| \ \/ /  / /  |  \/  | ((/ __| |_   _|  / __|
| __ | | _|   >  <  /_/   | |\/| |  | (__    | |    \__ \
|_||_| |___| /_/\_\       |_|  |_|   \___|   |_|    |___/
`

const docs = `
Hex is a two-player, zero-sum, perfect information game invented by the
Danish mathematician Piet Hein and independently by the American
mathematician John Nash. Chance plays no part in Hex, and there are no draw
outcomes - there is always a winner and a loser.

Player B (Blue) connects the top and bottom edges; player R (Red) connects
the left and right edges. Cells are entered as a 1-indexed row number and a
column letter, for example "3 b".

The robot thinks with Monte Carlo tree search: within its decision time it
plays out thousands of random games from the current position and picks the
move whose playouts win most often.`

// console is the interactive front end: a menu, bounds-checked prompts and
// the glue that assembles players and hands them to the engine.
type console struct {
	in   *bufio.Scanner
	out  io.Writer
	term *termenv.Output
}

func runConsole(in io.Reader, out io.Writer) {
	c := &console{
		in:   bufio.NewScanner(in),
		out:  out,
		term: termenv.NewOutput(out),
	}

	fmt.Fprintln(c.out, c.styled(welcomeArt, "12"))
	fmt.Fprintln(c.out, "Welcome.")

	for {
		fmt.Fprintf(c.out, "\n%s\n", c.styled("MENU:", "14"))
		fmt.Fprintln(c.out, "\n[1] Play against a robot")
		fmt.Fprintln(c.out, "[2] Robot arena")
		fmt.Fprintln(c.out, "[3] Human arena")
		fmt.Fprintln(c.out, "[4] Read the docs")
		fmt.Fprintln(c.out, "[5] (H)Exit")

		option, ok := c.askInt("Option: ", 1, 5)
		if !ok {
			return
		}
		fmt.Fprintln(c.out)

		var err error
		switch option {
		case 1:
			err = c.matchAgainstRobot()
		case 2:
			err = c.robotArena()
		case 3:
			err = c.humanArena()
		case 4:
			fmt.Fprintln(c.out, docs)
		case 5:
			fmt.Fprintln(c.out, c.styled("Goodbye.", "12"))
			return
		}
		if err != nil {
			fmt.Fprintf(c.out, "%s %v\n", c.styled("Error:", "9"), err)
		}
	}
}

func (c *console) matchAgainstRobot() error {
	humanNumber, ok := c.askInt(
		"Enter '1' if you want to be Player 1 (Blue, Vertical) or '2' if you want to be Player 2 (Red, Horizontal): ", 1, 2)
	if !ok {
		return io.EOF
	}
	board, ok := c.askBoard()
	if !ok {
		return io.EOF
	}
	robot, ok := c.createRobot("agent")
	if !ok {
		return io.EOF
	}
	human := c.newHuman()

	if humanNumber == 1 {
		_, err := engine.NewLocal(board, human, robot, c.out).Run()
		return err
	}
	if robot.Verbose {
		c.countdown(3)
	}
	_, err := engine.NewLocal(board, robot, human, c.out).Run()
	return err
}

func (c *console) robotArena() error {
	board, ok := c.askBoard()
	if !ok {
		return io.EOF
	}
	first, ok := c.createRobot("first agent")
	if !ok {
		return io.EOF
	}
	second, ok := c.createRobot("second agent")
	if !ok {
		return io.EOF
	}
	_, err := engine.NewLocal(board, first, second, c.out).Run()
	return err
}

func (c *console) humanArena() error {
	board, ok := c.askBoard()
	if !ok {
		return io.EOF
	}
	_, err := engine.NewLocal(board, c.newHuman(), c.newHuman(), c.out).Run()
	return err
}

// newHuman builds a human player sharing the console's scanner, so prompts
// and menu input read from the same stream.
func (c *console) newHuman() *agent.HumanPlayer {
	return agent.NewHumanPlayerFromScanner(c.in, c.out)
}

func (c *console) askBoard() (*game.Board, bool) {
	size, ok := c.askInt("Enter board size (between 2 and 11): ", 2, 11)
	if !ok {
		return nil, false
	}
	board, err := game.NewBoard(size)
	if err != nil {
		// The prompt bounds make this unreachable.
		panic(err)
	}
	return board, true
}

// createRobot walks the agent initialization dialog: decision time,
// optionally a non-default exploration constant, parallelism, and verbosity
// only when the agent is not parallel.
func (c *console) createRobot(label string) (*agent.MCTSPlayer, bool) {
	fmt.Fprintf(c.out, "\nInitializing %s:\n", label)

	decisionMs, ok := c.askInt("Enter max decision time in milliseconds (at least 100): ", 100, 1<<31-1)
	if !ok {
		return nil, false
	}

	exploration := 1.41
	change, ok := c.askYesNo("Would you like to change the default exploration constant (1.41)? (y/n): ")
	if !ok {
		return nil, false
	}
	if change {
		exploration, ok = c.askFloat("Enter exploration constant (between 0.1 and 2): ", 0.1, 2.0)
		if !ok {
			return nil, false
		}
	}

	parallel, ok := c.askYesNo("Would you like to parallelize the agent? (y/n): ")
	if !ok {
		return nil, false
	}

	verbose := false
	if !parallel {
		verbose, ok = c.askYesNo("Would you like to enable verbose mode? (y/n): ")
		if !ok {
			return nil, false
		}
	}

	return agent.NewMCTSPlayer(exploration, time.Duration(decisionMs)*time.Millisecond, parallel, verbose), true
}

func (c *console) countdown(seconds int) {
	for ; seconds > 0; seconds-- {
		fmt.Fprintf(c.out, "The agent will start thinking loudly in %d ...\n", seconds)
		time.Sleep(time.Second)
	}
}

// askInt prompts until the input is an integer within [lo, hi]. ok is false
// when the input stream ends.
func (c *console) askInt(prompt string, lo, hi int) (int, bool) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			return 0, false
		}
		value, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a valid integer.")
			continue
		}
		if value < lo || value > hi {
			fmt.Fprintln(c.out, "Invalid value. Please try again.")
			continue
		}
		return value, true
	}
}

func (c *console) askFloat(prompt string, lo, hi float64) (float64, bool) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			return 0, false
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(c.in.Text()), 64)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a valid number.")
			continue
		}
		if value < lo || value > hi {
			fmt.Fprintln(c.out, "Invalid value. Please try again.")
			continue
		}
		return value, true
	}
}

func (c *console) askYesNo(prompt string) (answer, ok bool) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(c.in.Text())) {
		case "y":
			return true, true
		case "n":
			return false, true
		default:
			fmt.Fprintln(c.out, "Invalid response. Please enter 'y' or 'n'.")
		}
	}
}

func (c *console) styled(s, color string) string {
	return c.term.String(s).Foreground(c.term.Color(color)).String()
}
