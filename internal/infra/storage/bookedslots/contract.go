package bookedslots

import "github.com/m04kA/MediCare-Gateway/pkg/txmanager"

type DBExecutor = txmanager.DBExecutor
