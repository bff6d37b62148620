// This file is part of vtmode.
//
// vtmode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vtmode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vtmode.  If not, see <https://www.gnu.org/licenses/>.

//go:build linux || darwin

package term

// The six High-Level Operations, POSIX shapes (spec §4.5). Each is
// duplicate-safe: calling the same operation twice on the same stream
// returns the same underlying Item(s) rather than double-applying.

// AnsiIn is a no-op on POSIX: a real terminal already speaks ANSI/VT on
// its input side, there is no termios bit for it. Returns Pseudo so
// callers stay polymorphic across platforms.
func AnsiIn(stream StreamId) (Capability, error) { return Pseudo{}, nil }

// AnsiOut is a no-op on POSIX, for the same reason as AnsiIn.
func AnsiOut(stream StreamId) (Capability, error) { return Pseudo{}, nil }

// NoEcho clears ECHO on the local-mode axis.
func NoEcho(stream StreamId) (Capability, error) {
	return SubFlag(stream, Flag(ECHO), ModOption{
		Axis: Local(), Timing: Immediate, ResetAtExit: true, Note: "no_echo",
	})
}

// NonBlock clears ICANON and drives VMIN/VTIME to 0, so a read returns
// immediately with whatever bytes are already available instead of
// blocking for a full line.
func NonBlock(stream StreamId) (Capability, error) {
	icanon, err := SubFlag(stream, Flag(ICANON), ModOption{
		Axis: Local(), Timing: Immediate, ResetAtExit: true, Note: "non_block/icanon",
	})
	if err != nil {
		return nil, err
	}
	vmin, err := AddFlag(stream, CtrlCharByte(0), ModOption{
		Axis: CtrlChar(VMIN), Timing: Immediate, ResetAtExit: true, Note: "non_block/vmin",
	})
	if err != nil {
		return nil, err
	}
	vtime, err := AddFlag(stream, CtrlCharByte(0), ModOption{
		Axis: CtrlChar(VTIME), Timing: Immediate, ResetAtExit: true, Note: "non_block/vtime",
	})
	if err != nil {
		return nil, err
	}
	return newComposite(icanon, vmin, vtime), nil
}

// NoProcess clears ISIG (so INTR/QUIT/SUSP stop generating signals) and
// IXON (so XON/XOFF stop throttling output).
func NoProcess(stream StreamId) (Capability, error) {
	isig, err := SubFlag(stream, Flag(ISIG), ModOption{
		Axis: Local(), Timing: Immediate, ResetAtExit: true, Note: "no_process/isig",
	})
	if err != nil {
		return nil, err
	}
	ixon, err := SubFlag(stream, Flag(IXON), ModOption{
		Axis: In(), Timing: Immediate, ResetAtExit: true, Note: "no_process/ixon",
	})
	if err != nil {
		return nil, err
	}
	return newComposite(isig, ixon), nil
}

// NoImplDef clears IEXTEN (implementation-defined input processing) and
// OPOST (implementation-defined output post-processing).
func NoImplDef(stream StreamId) (Capability, error) {
	iexten, err := SubFlag(stream, Flag(IEXTEN), ModOption{
		Axis: Local(), Timing: Immediate, ResetAtExit: true, Note: "no_impl_def/iexten",
	})
	if err != nil {
		return nil, err
	}
	opost, err := SubFlag(stream, Flag(OPOST), ModOption{
		Axis: Out(), Timing: Immediate, ResetAtExit: true, Note: "no_impl_def/opost",
	})
	if err != nil {
		return nil, err
	}
	return newComposite(iexten, opost), nil
}
