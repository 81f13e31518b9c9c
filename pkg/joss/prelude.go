// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package joss

// DefaultPrelude contains the standard definitions that are automatically
// loaded unless WithNoPrelude is given. They are plain joss lines.
const DefaultPrelude = `
Set pi = 3.14159265358979.
Let sq(x) = x*x.
Let min(a,b) = (a<b:a; b).
Let max(a,b) = (a>b:a; b).
Let sgn(x) = (x>0:1; x<0:-1; 0).
`
