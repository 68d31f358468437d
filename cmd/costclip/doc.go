// Costclip rewrites a Java `with(...)` requirement list into a Rust `cost!(...)`
// macro call, in place on the system clipboard.
//
// Copy a line such as
//
//	requirements(Category.crafting, with(Items.copper, 75, Items.lead, 30));
//
// and run costclip; the clipboard then holds
//
//	cost!(Copper: 75, Lead: 30)
//
// Usage:
//
//	costclip                  # rewrite the clipboard in place
//	costclip --dry-run        # print the result, leave the clipboard alone
//	costclip convert < in     # rewrite stdin to stdout
//	costclip config show      # print the effective configuration
//
// Exit status is 0 on success, 1 when no call is found or its arguments are
// malformed, 2 on usage errors and 4 when the clipboard cannot be used.
package main
