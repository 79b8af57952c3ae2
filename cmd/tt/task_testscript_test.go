package main

import (
	"testing"

	"github.com/amonks/tt/internal/testsupport"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestTaskScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/task",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"envset":     testsupport.CmdEnvSet,
			"taskstatus": testsupport.CmdTaskStatus,
		},
	})
}
