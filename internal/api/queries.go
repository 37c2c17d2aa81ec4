package api

// GraphQL queries and mutations for the floor-tracking API

const queryEmployeeByBadge = `
query EmployeeByBadge($badgeNumber: String!) {
  employeeByBadge(badgeNumber: $badgeNumber) {
    id
    badgeNumber
    displayName
    assignedProcess {
      id
      name
    }
  }
}
`

const queryActiveSession = `
query ActiveSessionForEmployee($badgeNumber: String!) {
  activeSessionForEmployee(badgeNumber: $badgeNumber) {
    id
    startedAt
    endedAt
    pauses {
      id
      startedAt
      endedAt
      reason
    }
  }
}
`

const queryProcessOperation = `
query ProcessOperation($workOrderCode: String!, $processId: ID!) {
  processOperation(workOrderCode: $workOrderCode, processId: $processId) {
    id
    workOrderCode
    processId
    processName
    state
    startedAt
    committedUnitCount
    partialUnitCount
    targetUnitCount
    sessions {
      id
      startedAt
      endedAt
      pauses {
        id
        startedAt
        endedAt
        reason
      }
    }
  }
}
`

const queryMachinesForProcess = `
query MachinesForProcess($processId: ID!) {
  machinesForProcess(processId: $processId) {
    id
    name
  }
}
`

const queryFloorSummary = `
query FloorSummary {
  floorSummary {
    operations {
      workOrderCode
      processName
      state
      committedUnitCount
      targetUnitCount
      workedMinutes
      pausedMinutes
    }
    inventoryMoves {
      material
      direction
      quantity
    }
  }
}
`

const mutationRecordScan = `
mutation RecordScan($mutationId: ID!, $operationId: ID!, $employeeId: ID!, $machineId: ID!) {
  recordScan(
    mutationId: $mutationId
    operationId: $operationId
    employeeId: $employeeId
    machineId: $machineId
  ) {
    processOperation {
      state
      committedUnitCount
      partialUnitCount
    }
  }
}
`

const mutationSetPauseState = `
mutation SetPauseState($mutationId: ID!, $operationId: ID!, $opening: Boolean!, $reason: String) {
  setPauseState(
    mutationId: $mutationId
    operationId: $operationId
    opening: $opening
    reason: $reason
  ) {
    state
  }
}
`

const mutationRecordScrap = `
mutation RecordScrap($mutationId: ID!, $sessionId: ID!, $operationId: ID!, $reason: String!) {
  recordScrap(
    mutationId: $mutationId
    sessionId: $sessionId
    operationId: $operationId
    reason: $reason
  ) {
    processOperation {
      state
    }
  }
}
`

const mutationRecordProblem = `
mutation RecordProblem($mutationId: ID!, $sessionId: ID!, $description: String!) {
  recordProblem(mutationId: $mutationId, sessionId: $sessionId, description: $description) {
    id
  }
}
`

const mutationRecordCollaborator = `
mutation RecordCollaborator($mutationId: ID!, $sessionId: ID!, $badgeNumber: String!) {
  recordCollaborator(mutationId: $mutationId, sessionId: $sessionId, badgeNumber: $badgeNumber) {
    collaboratorName
  }
}
`

const mutationRecordInventoryMove = `
mutation RecordInventoryMove($mutationId: ID!, $operationId: ID!, $material: String!, $direction: String!, $quantity: Int!) {
  recordInventoryMove(
    mutationId: $mutationId
    operationId: $operationId
    material: $material
    direction: $direction
    quantity: $quantity
  ) {
    id
  }
}
`
