/*
Package display renders the structure of a boxtree index to a console.

Output is a per-node indented listing, colored by tree level, truncated to
the terminal width where one can be discovered. It exists for debugging and
teaching sessions; nothing in the index depends on it.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package display
