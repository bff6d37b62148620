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

//go:build windows

package term

// The six High-Level Operations, Windows console-mode shapes (spec §4.5).
// Every write targets the single per-handle bitmask; AxisKind is accepted
// for symmetry with the POSIX signature but ignored by windowsAdapter.

// AnsiIn enables ENABLE_VIRTUAL_TERMINAL_INPUT, after confirming the
// running console host is new enough to honor it.
func AnsiIn(stream StreamId) (Capability, error) {
	if err := CheckBuild(ansiBuildThreshold); err != nil {
		return nil, err
	}
	return AddFlag(stream, Flag(CMD_VIRTUAL_TERMINAL_INPUT), ModOption{
		Axis: In(), ResetAtExit: true, Note: "ansi_in",
	})
}

// AnsiOut enables ENABLE_VIRTUAL_TERMINAL_PROCESSING, after the same build
// check as AnsiIn.
func AnsiOut(stream StreamId) (Capability, error) {
	if err := CheckBuild(ansiBuildThreshold); err != nil {
		return nil, err
	}
	return AddFlag(stream, Flag(CMD_VIRTUAL_TERMINAL_PROCESSING), ModOption{
		Axis: Out(), ResetAtExit: true, Note: "ansi_out",
	})
}

// NoEcho clears ENABLE_ECHO_INPUT.
func NoEcho(stream StreamId) (Capability, error) {
	return SubFlag(stream, Flag(CMD_ECHO_INPUT), ModOption{
		Axis: In(), ResetAtExit: true, Note: "no_echo",
	})
}

// NonBlock clears ENABLE_ECHO_INPUT and ENABLE_LINE_INPUT: the console no
// longer buffers a full line before ReadFile returns.
func NonBlock(stream StreamId) (Capability, error) {
	echo, err := SubFlag(stream, Flag(CMD_ECHO_INPUT), ModOption{
		Axis: In(), ResetAtExit: true, Note: "non_block/echo",
	})
	if err != nil {
		return nil, err
	}
	line, err := SubFlag(stream, Flag(CMD_LINE_INPUT), ModOption{
		Axis: In(), ResetAtExit: true, Note: "non_block/line",
	})
	if err != nil {
		return nil, err
	}
	return newComposite(echo, line), nil
}

// NoProcess clears ENABLE_PROCESSED_INPUT, so Ctrl-C stops being
// intercepted as a signal and is delivered as an ordinary key event.
func NoProcess(stream StreamId) (Capability, error) {
	return SubFlag(stream, Flag(CMD_PROCESSED_INPUT), ModOption{
		Axis: In(), ResetAtExit: true, Note: "no_process",
	})
}

// NoImplDef sets ENABLE_EXTENDED_FLAGS and clears ENABLE_QUICK_EDIT_MODE:
// the console host's implementation-defined mouse-selection behavior stops
// intercepting input.
func NoImplDef(stream StreamId) (Capability, error) {
	ext, err := AddFlag(stream, Flag(CMD_EXTENDED_FLAGS), ModOption{
		Axis: In(), ResetAtExit: true, Note: "no_impl_def/extended_flags",
	})
	if err != nil {
		return nil, err
	}
	qe, err := SubFlag(stream, Flag(CMD_QUICK_EDIT_MODE), ModOption{
		Axis: In(), ResetAtExit: true, Note: "no_impl_def/quick_edit",
	})
	if err != nil {
		return nil, err
	}
	return newComposite(ext, qe), nil
}
