package shopify

// GraphQL documents. Every product query requests the same fragment so all
// paths normalize identically: images(first:10), variants(first:10), money
// fields as {amount currencyCode}.

const productFragment = `fragment ProductFields on Product {
  id
  title
  handle
  description
  vendor
  productType
  tags
  priceRange {
    minVariantPrice { amount currencyCode }
  }
  images(first: 10) {
    edges { node { url altText } }
  }
  variants(first: 10) {
    edges {
      node {
        id
        title
        availableForSale
        price { amount currencyCode }
        compareAtPrice { amount currencyCode }
      }
    }
  }
}`

const productsQuery = productFragment + `
query Products($first: Int!, $after: String, $query: String, $sortKey: ProductSortKeys, $reverse: Boolean) {
  products(first: $first, after: $after, query: $query, sortKey: $sortKey, reverse: $reverse) {
    edges { node { ...ProductFields } }
    pageInfo { hasNextPage endCursor }
  }
}`

const productByHandleQuery = productFragment + `
query ProductByHandle($handle: String!) {
  product(handle: $handle) { ...ProductFields }
}`

const productByIDQuery = productFragment + `
query ProductByID($id: ID!) {
  node(id: $id) {
    ... on Product { ...ProductFields }
  }
}`

const collectionProductsQuery = productFragment + `
query CollectionProducts($handle: String!, $first: Int!, $after: String) {
  collection(handle: $handle) {
    products(first: $first, after: $after) {
      edges { node { ...ProductFields } }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

const collectionsQuery = `query Collections($first: Int!, $after: String) {
  collections(first: $first, after: $after) {
    edges {
      node {
        id
        title
        handle
        description
        image { url altText }
      }
    }
    pageInfo { hasNextPage endCursor }
  }
}`
