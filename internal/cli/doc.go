// Package cli implements the narvi command line on top of spf13/cobra.
//
// Every invocation loads the configuration, opens the local database,
// loads the built-in plugins and overlays the user schemes stored in the
// database before running the command. Master secrets are read from the
// terminal without echo and wiped once the derivation finishes.
//
// Commands
//
//	hash [SALT]         derive the password for SALT, remembering new salts
//	list                list remembered salts
//	info SALT           show the schemes bound to SALT
//	forget SALT         remove a remembered salt
//	lshashschemes       list hash schemes
//	lswordschemes       list word schemes
//	define FILE         store user schemes from a YAML or JSON file
//	undefine            remove a user scheme
//	import FILE         load a legacy settings file
//	export FILE         write salts and user schemes in the legacy layout
package cli
