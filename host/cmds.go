// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/cmd"

// A command is the data stored with each entry in the command tree.
type command struct {
	name        string
	brief       string
	description string
	usage       string
	handler     func(*Host, cmd.Selection) error
}

var (
	cmds     *cmd.Tree
	commands []*command
)

func addCommand(t *cmd.Tree, c *command) {
	t.AddCommand(cmd.CommandDescriptor{
		Name:        c.name,
		Brief:       c.brief,
		Description: c.description,
		Usage:       c.usage,
		Data:        c,
	})
	commands = append(commands, c)
}

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "sicasm"})
	addCommand(root, &command{
		name:        "help",
		description: "Display help for a command.",
		usage:       "help [<command>]",
		handler:     (*Host).cmdHelp,
	})
	addCommand(root, &command{
		name:  "assemble",
		brief: "Assemble a SIC/XE source file",
		description: "Run both assembler passes on the specified file," +
			" writing the object program to the file named by the" +
			" OutputFile setting. The assembled program is kept so that" +
			" its symbols and records can be inspected.",
		usage:   "assemble <filename>",
		handler: (*Host).cmdAssemble,
	})
	addCommand(root, &command{
		name:  "disassemble",
		brief: "Disassemble object code",
		description: "Disassemble the object code of the last assembled" +
			" program. Without arguments, every text record is" +
			" disassembled. Otherwise disassembly starts at the requested" +
			" address, and the number of instruction lines may be given" +
			" as an option.",
		usage:   "disassemble [<address>] [<lines>]",
		handler: (*Host).cmdDisassemble,
	})
	addCommand(root, &command{
		name:  "dump",
		brief: "Dump assembler state",
		description: "Pretty-print the internal state of the last assembled" +
			" program. The item to dump may be program, lines, symbols or" +
			" module. Output is colored when the Color setting is true and" +
			" the output is a terminal.",
		usage:   "dump [program|lines|symbols|module]",
		handler: (*Host).cmdDump,
	})
	addCommand(root, &command{
		name:        "quit",
		brief:       "Quit the program",
		description: "Quit the program.",
		usage:       "quit",
		handler:     (*Host).cmdQuit,
	})
	addCommand(root, &command{
		name:  "records",
		brief: "List object records",
		description: "Display the header, text and end records of the last" +
			" assembled program, as read back from the object file.",
		usage:   "records",
		handler: (*Host).cmdRecords,
	})
	addCommand(root, &command{
		name:  "set",
		brief: "Set a configuration variable",
		description: "Set the value of a configuration variable. To see the" +
			" current values of all configuration variables, type set" +
			" without any arguments.",
		usage:   "set [<var> <value>]",
		handler: (*Host).cmdSet,
	})
	addCommand(root, &command{
		name:  "symbols",
		brief: "List the symbol table",
		description: "Display every symbol defined by the last assembled" +
			" program, ordered by address.",
		usage:   "symbols",
		handler: (*Host).cmdSymbols,
	})

	// Add command shortcuts.
	root.AddShortcut("a", "assemble")
	root.AddShortcut("d", "disassemble")
	root.AddShortcut("r", "records")
	root.AddShortcut("s", "symbols")
	root.AddShortcut("q", "quit")
	root.AddShortcut("?", "help")

	cmds = root
}
