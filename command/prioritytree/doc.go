// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// prioritytree - build a priority tree from the command line and
// inspect it
//
// every argument after the sub-command is an entry, either a bare
// priority number or PRIORITY:PAYLOAD; entries that cannot be parsed
// are reported and skipped
//
//	prioritytree --policy=minimum list 5:A 3:B 8:C 1:D 7:E
//	prioritytree --policy=maximum drain 4 9 2
//	prioritytree -p min search --key=3 5 3 8
//	prioritytree -p max draw 1 2 3 4 5 6 7
//	prioritytree -p min stats $(seq 1000)
package main
