package view

// GraphQL list documents. These mirror the backend schema one to one; the
// reservation field set matches the ReservationFields fragment of the old UI.

const reservationFields = `
      id
      firstName
      lastName
      phoneNumber
      email
      amount
      createdAt
      reserveAt
      status
      notes`

const QueryReservationToday = `
  query GetAllReservation {
    getReservationToday {` + reservationFields + `
    }
  }
`

const QueryBigReservation = `
  query GetBigReservation {
    getBigReservation {` + reservationFields + `
    }
  }
`

const QueryAllReservationWithFilter = `
  query GetAllReservationWithFilter($filter: ReservationFilter!) {
    getAllReservationWithFilter(filter: $filter) {` + reservationFields + `
    }
  }
`
